package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"sdg-knowledge/internal/models"
)

// SearchKeywords fetches one page of the keyword table ordered by keyword.
func (c *Client) SearchKeywords(ctx context.Context, search string, page int) (models.Listing[models.Keyword], error) {
	query := url.Values{}
	query.Set("search", search)
	query.Set("page", strconv.Itoa(page))
	query.Set("ordering", "keyword")

	body, err := c.GetRaw(ctx, "api/sdg_keywords/keywords/", query)
	if err != nil {
		return models.Listing[models.Keyword]{}, fmt.Errorf("search keywords: %w", err)
	}
	listing, err := models.DecodeListing[models.Keyword](body)
	if err != nil {
		return models.Listing[models.Keyword]{}, fmt.Errorf("search keywords: %w", err)
	}
	return listing, nil
}

// SearchPlans queries the education or action search endpoint. Entries
// without a title are dropped.
func (c *Client) SearchPlans(ctx context.Context, kind, q string) ([]models.PlanSearchResult, error) {
	path := "api/sdg-education/search"
	if kind == models.KindAction {
		path = "api/sdg-actions/search"
	}
	query := url.Values{}
	query.Set("q", q)

	body, err := c.GetRaw(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", kind, err)
	}
	values, err := models.RecordValues(body)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", kind, err)
	}

	results := make([]models.PlanSearchResult, 0, len(values))
	for _, raw := range values {
		var r models.PlanSearchResult
		if err := json.Unmarshal(raw, &r); err != nil || r.Title == "" {
			continue
		}
		r.Kind = kind
		results = append(results, r)
	}
	return results, nil
}

// TopEducations returns the most viewed education plan names.
func (c *Client) TopEducations(ctx context.Context) ([]string, error) {
	resp, err := c.Do(ctx, http.MethodPost, "api/admin/analytics/educations/top/", nil, struct{}{})
	if err != nil {
		return nil, fmt.Errorf("top educations: %w", err)
	}
	return topNames(resp.Body, func(raw json.RawMessage) string {
		var e models.TopEducation
		_ = json.Unmarshal(raw, &e)
		return e.EducationName
	})
}

// TopActions returns the most viewed action plan names.
func (c *Client) TopActions(ctx context.Context) ([]string, error) {
	resp, err := c.Do(ctx, http.MethodPost, "api/admin/analytics/actions/top/", nil, struct{}{})
	if err != nil {
		return nil, fmt.Errorf("top actions: %w", err)
	}
	return topNames(resp.Body, func(raw json.RawMessage) string {
		var a models.TopAction
		_ = json.Unmarshal(raw, &a)
		return a.ActionName
	})
}

// LogEducationView records a view of an education plan.
func (c *Client) LogEducationView(ctx context.Context, educationID int) error {
	if err := c.Post(ctx, "api/admin/log/education/", models.EducationLogRequest{EducationID: educationID}, nil); err != nil {
		return fmt.Errorf("log education view: %w", err)
	}
	return nil
}

// LogActionView records a view of an action plan.
func (c *Client) LogActionView(ctx context.Context, actionID int) error {
	if err := c.Post(ctx, "api/admin/log/action/", models.ActionLogRequest{ActionID: actionID}, nil); err != nil {
		return fmt.Errorf("log action view: %w", err)
	}
	return nil
}

// UserInteractions returns the plans a user recently viewed.
func (c *Client) UserInteractions(ctx context.Context, userID int) (*models.UserInteractions, error) {
	var result models.UserInteractions
	path := "api/admin/user/" + strconv.Itoa(userID) + "/userInteractions/"
	if err := c.Get(ctx, path, nil, &result); err != nil {
		return nil, fmt.Errorf("user interactions: %w", err)
	}
	return &result, nil
}

func topNames(body []byte, name func(json.RawMessage) string) ([]string, error) {
	values, err := models.RecordValues(body)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(values))
	for _, raw := range values {
		if n := name(raw); n != "" {
			names = append(names, n)
		}
	}
	return names, nil
}
