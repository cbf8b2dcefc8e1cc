package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sdg-knowledge/internal/errors"
	"sdg-knowledge/internal/models"
)

type fakeFetcher struct {
	calls []string
	data  *models.AnalyticsData
	err   error
}

func (f *fakeFetcher) UserActivityAnalytics(_ context.Context, timeRange string) (*models.AnalyticsData, error) {
	f.calls = append(f.calls, timeRange)
	return f.data, f.err
}

func TestFetch(t *testing.T) {
	t.Run("rejects unknown range without calling the server", func(t *testing.T) {
		f := &fakeFetcher{}

		data, err := Fetch(context.Background(), f, "year")

		assert.Nil(t, data)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTimeRange)
		assert.Empty(t, f.calls)
	})

	t.Run("returns fetch errors", func(t *testing.T) {
		f := &fakeFetcher{err: &apperrors.APIError{StatusCode: 500}}

		data, err := Fetch(context.Background(), f, models.TimeRangeWeek)

		assert.Nil(t, data)
		var apiErr *apperrors.APIError
		assert.True(t, errors.As(err, &apiErr))
		assert.Equal(t, []string{models.TimeRangeWeek}, f.calls)
	})

	t.Run("fills missing lists", func(t *testing.T) {
		f := &fakeFetcher{data: &models.AnalyticsData{}}

		data, err := Fetch(context.Background(), f, models.TimeRangeAll)

		require.NoError(t, err)
		assert.NotNil(t, data.PageActivities.MostVisitedPages)
		assert.NotNil(t, data.SearchActivities.SearchTypes)
		assert.NotNil(t, data.SearchActivities.MostSearchedTerms)
		assert.NotNil(t, data.FormActivities.MostActiveForms)
	})
}

func TestRangeLabel(t *testing.T) {
	assert.Equal(t, "All Time", RangeLabel(models.TimeRangeAll))
	assert.Equal(t, "Last Week", RangeLabel(models.TimeRangeWeek))
	assert.Equal(t, "Last Month", RangeLabel(models.TimeRangeMonth))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{"zero", 0, "0s"},
		{"seconds only", 45, "45s"},
		{"minutes and seconds", 125, "2m 5s"},
		{"hours minutes seconds", 3725, "1h 2m 5s"},
		{"whole hour keeps zero parts", 3600, "1h 0m 0s"},
		{"fractional seconds kept", 90.5, "1m 30.5s"},
		{"negative clamps to zero", -3, "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.seconds))
		})
	}
}

func TestFormatDate(t *testing.T) {
	t.Run("formats in the given location", func(t *testing.T) {
		out, err := FormatDate("2024-03-05T14:07:00.000Z", time.UTC)
		require.NoError(t, err)
		assert.Equal(t, "2024年3月5日 14:07", out)
	})

	t.Run("converts zones", func(t *testing.T) {
		out, err := FormatDate("2024-03-05T23:30:00Z", time.FixedZone("CST", 8*3600))
		require.NoError(t, err)
		assert.Equal(t, "2024年3月6日 07:30", out)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := FormatDate("yesterday", time.UTC)
		assert.Error(t, err)
	})
}

func sampleData() *models.AnalyticsData {
	return &models.AnalyticsData{
		PageActivities: models.PageActivities{
			TotalVisits:        12,
			TotalActiveTime:    3725,
			AverageSessionTime: 125,
			MostVisitedPages:   []models.PageVisits{{PageName: "Dashboard", VisitCount: 7}},
		},
		SearchActivities: models.SearchActivities{
			TotalSearches:     4,
			SearchTypes:       []models.SearchType{{SearchType: "keyword", SearchCount: 3}},
			MostSearchedTerms: []models.SearchTerm{{SearchQuery: "water", SearchCount: 2}},
		},
		FormActivities: models.FormActivities{
			TotalFormActivities: 9,
			FormEditTime:        45,
			TotalWordsWritten:   320,
			MostActiveForms: []models.ActiveForm{
				{ProjectName: "River Cleanup", ActivityCount: 5},
				{ProjectName: "", ActivityCount: 1},
			},
		},
	}
}

func TestRender(t *testing.T) {
	d := sampleData()

	t.Run("overview cards are always shown", func(t *testing.T) {
		out := Render(d, models.TimeRangeMonth, TabPages)
		assert.Contains(t, out, "User Activity Analytics")
		assert.Contains(t, out, "Last Month")
		assert.Contains(t, out, "Total Visits")
		assert.Contains(t, out, "Total Searches")
		assert.Contains(t, out, "Total Form Activities")
		assert.Contains(t, out, "1h 2m 5s")
	})

	t.Run("pages tab", func(t *testing.T) {
		out := Render(d, models.TimeRangeAll, TabPages)
		assert.Contains(t, out, "Most Visited Pages")
		assert.Contains(t, out, "Dashboard")
		assert.Contains(t, out, "Average Session Time: 2m 5s")
		assert.NotContains(t, out, "Most Searched Terms")
	})

	t.Run("searches tab", func(t *testing.T) {
		out := Render(d, models.TimeRangeAll, TabSearches)
		assert.Contains(t, out, "Search Type Distribution")
		assert.Contains(t, out, "keyword")
		assert.Contains(t, out, "water")
	})

	t.Run("forms tab falls back for unnamed forms", func(t *testing.T) {
		out := Render(d, models.TimeRangeAll, TabForms)
		assert.Contains(t, out, "River Cleanup")
		assert.Contains(t, out, "Untitled Form")
		assert.Contains(t, out, "Total Edit Time: 45s")
		assert.Contains(t, out, "Total Words: 320 words")
		assert.Contains(t, out, "Total Form Activities: 9 times")
	})
}

func TestParseTab(t *testing.T) {
	tab, ok := ParseTab("forms")
	assert.True(t, ok)
	assert.Equal(t, TabForms, tab)

	_, ok = ParseTab("charts")
	assert.False(t, ok)
}
