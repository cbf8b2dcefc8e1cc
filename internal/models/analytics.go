package models

// Analytics time windows.
const (
	TimeRangeAll   = "all"
	TimeRangeWeek  = "week"
	TimeRangeMonth = "month"
)

// ValidTimeRange reports whether r is one of the accepted windows.
func ValidTimeRange(r string) bool {
	switch r {
	case TimeRangeAll, TimeRangeWeek, TimeRangeMonth:
		return true
	}
	return false
}

// AnalyticsData is the pre-aggregated user activity summary.
type AnalyticsData struct {
	PageActivities   PageActivities   `json:"page_activities"`
	SearchActivities SearchActivities `json:"search_activities"`
	FormActivities   FormActivities   `json:"form_activities"`
}

// PageActivities summarizes page views.
type PageActivities struct {
	TotalVisits        int          `json:"total_visits"`
	TotalActiveTime    float64      `json:"total_active_time"`
	MostVisitedPages   []PageVisits `json:"most_visited_pages"`
	AverageSessionTime float64      `json:"average_session_time"`
}

// PageVisits is a row of most_visited_pages.
type PageVisits struct {
	PageName   string `json:"page_name"`
	VisitCount int    `json:"visit_count"`
}

// SearchActivities summarizes searches.
type SearchActivities struct {
	TotalSearches     int          `json:"total_searches"`
	SearchTypes       []SearchType `json:"search_types"`
	MostSearchedTerms []SearchTerm `json:"most_searched_terms"`
}

// SearchType is a row of search_types.
type SearchType struct {
	SearchType  string `json:"search_type"`
	SearchCount int    `json:"search_count"`
}

// SearchTerm is a row of most_searched_terms.
type SearchTerm struct {
	SearchQuery string `json:"search_query"`
	SearchCount int    `json:"search_count"`
}

// FormActivities summarizes form editing.
type FormActivities struct {
	TotalFormActivities int          `json:"total_form_activities"`
	FormEditTime        float64      `json:"form_edit_time"`
	TotalWordsWritten   int          `json:"total_words_written"`
	MostActiveForms     []ActiveForm `json:"most_active_forms"`
}

// ActiveForm is a row of most_active_forms.
type ActiveForm struct {
	ProjectName   string `json:"form_id__impact_project_name"`
	ActivityCount int    `json:"activity_count"`
}
