package client

import (
	"context"
	"fmt"
	"net/url"

	"sdg-knowledge/internal/models"
)

// UserActivityAnalytics fetches the aggregated activity summary for a
// time window. The window is not validated here.
func (c *Client) UserActivityAnalytics(ctx context.Context, timeRange string) (*models.AnalyticsData, error) {
	query := url.Values{}
	query.Set("time_range", timeRange)

	var result models.AnalyticsData
	if err := c.Get(ctx, "api/admin/analytics/user-activity/", query, &result); err != nil {
		return nil, fmt.Errorf("user activity analytics: %w", err)
	}
	return &result, nil
}
