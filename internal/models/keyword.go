package models

// KeywordsPerPage is the server page size for keyword search.
const KeywordsPerPage = 20

// Keyword is a row of the SDG keyword table.
type Keyword struct {
	ID         int    `json:"id"`
	Keyword    string `json:"keyword"`
	SDGGoal    string `json:"sdggoal"`
	Target     string `json:"target"`
	Reference1 string `json:"reference1"`
	Reference2 string `json:"reference2"`
	Note       string `json:"note"`
}

// Plan kinds.
const (
	KindEducation = "education"
	KindAction    = "action"
)

// PlanSearchResult is an education or action plan returned by the search endpoints.
type PlanSearchResult struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Kind  string `json:"-"`
}

// TopEducation is an entry of api/admin/analytics/educations/top/.
type TopEducation struct {
	EducationName string `json:"educationName"`
}

// TopAction is an entry of api/admin/analytics/actions/top/.
type TopAction struct {
	ActionName string `json:"actionName"`
}

// UserInteractions is returned by api/admin/user/<id>/userInteractions/.
type UserInteractions struct {
	ActionPlansViewed    []PlanSearchResult `json:"action_plans_viewed"`
	EducationPlansViewed []PlanSearchResult `json:"education_plans_viewed"`
}

// EducationLogRequest records a view of an education plan.
type EducationLogRequest struct {
	EducationID int `json:"educationId"`
}

// ActionLogRequest records a view of an action plan.
type ActionLogRequest struct {
	ActionID int `json:"actionId"`
}
