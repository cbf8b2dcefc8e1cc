// Package analytics is the read side of user activity: it fetches the
// server's pre-aggregated summary and formats it for display.
package analytics

import (
	"context"
	"fmt"

	apperrors "sdg-knowledge/internal/errors"
	"sdg-knowledge/internal/models"
)

// Fetcher loads the aggregated summary for a window.
type Fetcher interface {
	UserActivityAnalytics(ctx context.Context, timeRange string) (*models.AnalyticsData, error)
}

// Fetch validates timeRange and loads the summary. An invalid window never
// reaches the server. Fetch failures are returned to the caller.
func Fetch(ctx context.Context, f Fetcher, timeRange string) (*models.AnalyticsData, error) {
	if !models.ValidTimeRange(timeRange) {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidTimeRange, timeRange)
	}

	data, err := f.UserActivityAnalytics(ctx, timeRange)
	if err != nil {
		return nil, err
	}
	normalize(data)
	return data, nil
}

// RangeLabel is the display name of a window.
func RangeLabel(timeRange string) string {
	switch timeRange {
	case models.TimeRangeWeek:
		return "Last Week"
	case models.TimeRangeMonth:
		return "Last Month"
	default:
		return "All Time"
	}
}

// normalize replaces missing lists with empty ones.
func normalize(d *models.AnalyticsData) {
	if d.PageActivities.MostVisitedPages == nil {
		d.PageActivities.MostVisitedPages = []models.PageVisits{}
	}
	if d.SearchActivities.SearchTypes == nil {
		d.SearchActivities.SearchTypes = []models.SearchType{}
	}
	if d.SearchActivities.MostSearchedTerms == nil {
		d.SearchActivities.MostSearchedTerms = []models.SearchTerm{}
	}
	if d.FormActivities.MostActiveForms == nil {
		d.FormActivities.MostActiveForms = []models.ActiveForm{}
	}
}
