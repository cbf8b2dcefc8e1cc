package service

import (
	"context"

	"sdg-knowledge/internal/analytics"
	"sdg-knowledge/internal/models"
)

// AnalyticsService reads the aggregated activity summary.
type AnalyticsService struct {
	api analytics.Fetcher
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(api analytics.Fetcher) *AnalyticsService {
	return &AnalyticsService{api: api}
}

// Summary fetches the summary for timeRange.
func (s *AnalyticsService) Summary(ctx context.Context, timeRange string) (*models.AnalyticsData, error) {
	return analytics.Fetch(ctx, s.api, timeRange)
}
