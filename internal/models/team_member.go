package models

import "encoding/json"

// Team role names as returned by the API.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// TeamMember is a flattened member entry used by the permission editor.
type TeamMember struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// UnmarshalJSON accepts both the flat shape and the nested
// {"user": {...}, "role": ...} shape used by the team members endpoint.
func (m *TeamMember) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       int          `json:"id"`
		Username string       `json:"username"`
		Email    string       `json:"email"`
		Role     string       `json:"role"`
		User     *UserSummary `json:"user"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	m.ID, m.Username, m.Email, m.Role = raw.ID, raw.Username, raw.Email, raw.Role
	if raw.User != nil {
		m.ID = raw.User.ID
		m.Username = raw.User.Username
		m.Email = raw.User.Email
	}
	return nil
}

// Summary drops the role.
func (m TeamMember) Summary() UserSummary {
	return UserSummary{ID: m.ID, Username: m.Username, Email: m.Email}
}

// TeamMemberListResponse is the response for listing team members.
type TeamMemberListResponse struct {
	Members []TeamMember `json:"members"`
}
