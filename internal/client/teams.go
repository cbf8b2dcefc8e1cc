package client

import (
	"context"
	"fmt"
	"strconv"

	"sdg-knowledge/internal/models"
)

// GetTeam loads a team.
func (c *Client) GetTeam(ctx context.Context, teamID int) (*models.Team, error) {
	var result models.Team
	if err := c.Get(ctx, teamPath(teamID, ""), nil, &result); err != nil {
		return nil, fmt.Errorf("get team %d: %w", teamID, err)
	}
	return &result, nil
}

// GetTeamRole returns the caller's role in a team.
func (c *Client) GetTeamRole(ctx context.Context, teamID int) (*models.TeamRoleResponse, error) {
	var result models.TeamRoleResponse
	if err := c.Post(ctx, teamPath(teamID, "role/"), struct{}{}, &result); err != nil {
		return nil, fmt.Errorf("get team role %d: %w", teamID, err)
	}
	return &result, nil
}

// GetGlobalSettings loads admin-wide team defaults.
func (c *Client) GetGlobalSettings(ctx context.Context) (*models.GlobalSettings, error) {
	var result models.GlobalSettings
	if err := c.Get(ctx, "api/admin/teams/globalSettings/", nil, &result); err != nil {
		return nil, fmt.Errorf("get global settings: %w", err)
	}
	return &result, nil
}

// UpdateMaxMembers changes a team's member cap.
func (c *Client) UpdateMaxMembers(ctx context.Context, teamID, maxMembers int) (*models.MessageResponse, error) {
	var result models.MessageResponse
	req := models.UpdateMaxMembersRequest{MaxMembers: maxMembers}
	if err := c.Post(ctx, teamPath(teamID, "update-max-members/"), req, &result); err != nil {
		return nil, fmt.Errorf("update max members %d: %w", teamID, err)
	}
	return &result, nil
}

// EmailInvite sends invitation emails.
func (c *Client) EmailInvite(ctx context.Context, teamID int, emails []string) (*models.EmailInviteResponse, error) {
	var result models.EmailInviteResponse
	req := models.EmailInviteRequest{Emails: emails}
	if err := c.Post(ctx, teamPath(teamID, "email-invite/"), req, &result); err != nil {
		return nil, fmt.Errorf("email invite %d: %w", teamID, err)
	}
	return &result, nil
}

// AcceptInvitation redeems an emailed invitation token.
func (c *Client) AcceptInvitation(ctx context.Context, token string) (*models.AcceptInvitationResponse, error) {
	var result models.AcceptInvitationResponse
	path := "api/teams/accept-invitation/" + pathSegment(token) + "/"
	if err := c.Post(ctx, path, struct{}{}, &result); err != nil {
		return nil, fmt.Errorf("accept invitation: %w", err)
	}
	return &result, nil
}

func teamPath(teamID int, suffix string) string {
	return "api/teams/" + strconv.Itoa(teamID) + "/" + suffix
}
