package client

import (
	"context"
	"fmt"
	"strconv"

	"sdg-knowledge/internal/models"
)

// ListForms returns the caller's action plans, normalizing the list shapes
// the endpoint produces.
func (c *Client) ListForms(ctx context.Context) (models.Listing[models.ActionPlan], error) {
	body, err := c.GetRaw(ctx, "api/sdg-action-plan/", nil)
	if err != nil {
		return models.Listing[models.ActionPlan]{}, fmt.Errorf("list forms: %w", err)
	}
	listing, err := models.DecodeListing[models.ActionPlan](body)
	if err != nil {
		return models.Listing[models.ActionPlan]{}, fmt.Errorf("list forms: %w", err)
	}
	return listing, nil
}

// GetForm loads one action plan.
func (c *Client) GetForm(ctx context.Context, formID int) (*models.ActionPlan, error) {
	var result models.ActionPlan
	if err := c.Get(ctx, formPath(formID, ""), nil, &result); err != nil {
		return nil, fmt.Errorf("get form %d: %w", formID, err)
	}
	return &result, nil
}

// UpdatePermissions replaces the form-level permission flags.
func (c *Client) UpdatePermissions(ctx context.Context, formID int, perms models.FormPermissions) error {
	if err := c.Post(ctx, formPath(formID, "permissions/"), perms, nil); err != nil {
		return fmt.Errorf("update permissions %d: %w", formID, err)
	}
	return nil
}

// GetEditors returns the explicit editor set.
func (c *Client) GetEditors(ctx context.Context, formID int) ([]models.UserSummary, error) {
	var result models.EditorsResponse
	if err := c.Get(ctx, formPath(formID, "editors/"), nil, &result); err != nil {
		return nil, fmt.Errorf("get editors %d: %w", formID, err)
	}
	return result.Editors, nil
}

// SetEditors replaces the explicit editor set.
func (c *Client) SetEditors(ctx context.Context, formID int, userIDs []int) error {
	if err := c.Post(ctx, formPath(formID, "editors/"), models.UserIDsRequest{UserIDs: nonNil(userIDs)}, nil); err != nil {
		return fmt.Errorf("set editors %d: %w", formID, err)
	}
	return nil
}

// GetViewers returns the explicit viewer set.
func (c *Client) GetViewers(ctx context.Context, formID int) ([]models.UserSummary, error) {
	var result models.ViewersResponse
	if err := c.Get(ctx, formPath(formID, "viewers/"), nil, &result); err != nil {
		return nil, fmt.Errorf("get viewers %d: %w", formID, err)
	}
	return result.Viewers, nil
}

// SetViewers replaces the explicit viewer set.
func (c *Client) SetViewers(ctx context.Context, formID int, userIDs []int) error {
	if err := c.Post(ctx, formPath(formID, "viewers/"), models.UserIDsRequest{UserIDs: nonNil(userIDs)}, nil); err != nil {
		return fmt.Errorf("set viewers %d: %w", formID, err)
	}
	return nil
}

// GetFormTeamMembers returns the members of the form's team.
func (c *Client) GetFormTeamMembers(ctx context.Context, formID int) ([]models.TeamMember, error) {
	var result models.TeamMemberListResponse
	if err := c.Get(ctx, formPath(formID, "team-members/"), nil, &result); err != nil {
		return nil, fmt.Errorf("get team members %d: %w", formID, err)
	}
	return result.Members, nil
}

func formPath(formID int, suffix string) string {
	return "api/sdg-action-plan/" + strconv.Itoa(formID) + "/" + suffix
}

func nonNil(ids []int) []int {
	if ids == nil {
		return []int{}
	}
	return ids
}
