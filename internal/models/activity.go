package models

// ActivityType enumerates tracked interactions.
type ActivityType string

// Activity types accepted by api/auth/activity/.
const (
	ActivityPageView  ActivityType = "page_view"
	ActivityPageLeave ActivityType = "page_leave"
	ActivitySearch    ActivityType = "search"
	ActivityFormEdit  ActivityType = "form_edit"
	ActivityFormView  ActivityType = "form_view"
)

// FormPage is the page name reported for form events.
const FormPage = "Form"

// ActivityEvent is one interaction event. Type-specific fields are omitted
// from the payload when unset.
type ActivityEvent struct {
	ActivityType  ActivityType `json:"activity_type"`
	Page          string       `json:"page"`
	Timestamp     string       `json:"timestamp"`
	Duration      *float64     `json:"duration,omitempty"`
	SearchQuery   *string      `json:"search_query,omitempty"`
	FormID        *int         `json:"form_id,omitempty"`
	FormWordCount *int         `json:"form_word_count,omitempty"`
}
