package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	apperrors "sdg-knowledge/internal/errors"
	"sdg-knowledge/internal/models"
)

// Search limits.
const (
	MaxSuggestions   = 5
	TrendingPerKind  = 2
	MaxRecentResults = 2
)

// Pages used when recording searches.
const (
	KeywordSearchPage = "keyword_search"
	PlanSearchPage    = "plan_search"
)

// KeywordPage is one page of keyword search results.
type KeywordPage struct {
	Keywords []models.Keyword
	Count    int
	Page     int
	Pages    int
}

// SearchService searches keywords and plans.
type SearchService struct {
	api      SearchAPI
	sessions Sessions
	tracker  Tracker
}

// NewSearchService creates a new SearchService.
func NewSearchService(api SearchAPI, sessions Sessions, tracker Tracker) *SearchService {
	return &SearchService{
		api:      api,
		sessions: sessions,
		tracker:  tracker,
	}
}

// Keywords returns one page of the keyword table. Non-empty queries are
// recorded as searches.
func (s *SearchService) Keywords(ctx context.Context, query string, page int) (*KeywordPage, error) {
	if page < 1 {
		page = 1
	}
	listing, err := s.api.SearchKeywords(ctx, query, page)
	if err != nil {
		return nil, err
	}
	if query != "" {
		s.tracker.TrackSearch(KeywordSearchPage, query)
	}
	return &KeywordPage{
		Keywords: listing.Items,
		Count:    listing.Count,
		Page:     page,
		Pages:    PageCount(listing.Count),
	}, nil
}

// PageCount is the number of keyword pages needed for count rows.
func PageCount(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + models.KeywordsPerPage - 1) / models.KeywordsPerPage
}

// Suggestions returns titled education results followed by action results,
// at most MaxSuggestions in total.
func (s *SearchService) Suggestions(ctx context.Context, query string) ([]models.PlanSearchResult, error) {
	education, err := s.api.SearchPlans(ctx, models.KindEducation, query)
	if err != nil {
		return nil, err
	}
	actions, err := s.api.SearchPlans(ctx, models.KindAction, query)
	if err != nil {
		return nil, err
	}
	s.tracker.TrackSearch(PlanSearchPage, query)

	out := make([]models.PlanSearchResult, 0, MaxSuggestions)
	for _, r := range append(education, actions...) {
		if r.Title == "" {
			continue
		}
		out = append(out, r)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out, nil
}

// Trending resolves the two most viewed education plans and the two most
// viewed action plans to search results. Names that no longer resolve are
// skipped.
func (s *SearchService) Trending(ctx context.Context) ([]models.PlanSearchResult, error) {
	educations, err := s.api.TopEducations(ctx)
	if err != nil {
		return nil, err
	}
	actions, err := s.api.TopActions(ctx)
	if err != nil {
		return nil, err
	}

	var out []models.PlanSearchResult
	for _, group := range []struct {
		kind  string
		names []string
	}{
		{models.KindEducation, educations},
		{models.KindAction, actions},
	} {
		for _, name := range firstN(group.names, TrendingPerKind) {
			results, err := s.api.SearchPlans(ctx, group.kind, name)
			if err != nil {
				return nil, fmt.Errorf("resolve %q: %w", name, err)
			}
			if len(results) == 0 {
				logrus.WithField("name", name).Debug("Trending plan not found")
				continue
			}
			out = append(out, results[0])
		}
	}
	return out, nil
}

// Recent returns the plans the logged-in user viewed last, action plans
// first. Without user details in the session the list is empty.
func (s *SearchService) Recent(ctx context.Context) ([]models.PlanSearchResult, error) {
	sess, err := s.sessions.Current(ctx)
	if err != nil || sess.UserDetails == nil || sess.UserDetails.ID == 0 {
		return []models.PlanSearchResult{}, nil
	}

	interactions, err := s.api.UserInteractions(ctx, sess.UserDetails.ID)
	if err != nil {
		return nil, err
	}
	for i := range interactions.ActionPlansViewed {
		interactions.ActionPlansViewed[i].Kind = models.KindAction
	}
	for i := range interactions.EducationPlansViewed {
		interactions.EducationPlansViewed[i].Kind = models.KindEducation
	}
	all := append(interactions.ActionPlansViewed, interactions.EducationPlansViewed...)
	return firstN(all, MaxRecentResults), nil
}

// LogView records that a plan was opened.
func (s *SearchService) LogView(ctx context.Context, kind string, id int) error {
	switch kind {
	case models.KindEducation:
		return s.api.LogEducationView(ctx, id)
	case models.KindAction:
		return s.api.LogActionView(ctx, id)
	}
	return fmt.Errorf("%w: %q", apperrors.ErrUnknownPlanKind, kind)
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	if items == nil {
		return []T{}
	}
	return items
}
