// Package models defines the wire types exchanged with the SDG Knowledge System API.
package models

// UserSummary is a minimal user reference used in editor/viewer sets.
type UserSummary struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserDetails is what the session keeps under the userDetails key.
type UserDetails struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// Profile is the editable user profile.
type Profile struct {
	ID              int    `json:"id,omitempty"`
	Username        string `json:"username" validate:"notblank"`
	FirstName       string `json:"first_name" validate:"notblank"`
	LastName        string `json:"last_name" validate:"notblank"`
	Email           string `json:"email" validate:"notblank"`
	Mobile          string `json:"mobile"`
	Organization    string `json:"organization" validate:"notblank"`
	FacultyAndMajor string `json:"faculty_and_major" validate:"notblank"`
	Gender          string `json:"gender" validate:"notblank"`
	Language        string `json:"language" validate:"notblank"`
	Positions       string `json:"positions"`
}

// SignUpRequest is the payload for api/auth/pending-register/.
type SignUpRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password1   string `json:"password1"`
	Password2   string `json:"password2"`
	Mobile      string `json:"mobile"`
	AgreedTerms bool   `json:"agreed_terms" validate:"terms"`
}

// SignUpResponse is returned by pending-register on success.
type SignUpResponse struct {
	Token string `json:"token"`
}

// AdminCheckResponse is returned by api/auth/admin-check/.
type AdminCheckResponse struct {
	IsAdmin bool `json:"is_admin"`
}

// MessageResponse is the common {message} body.
type MessageResponse struct {
	Message string `json:"message"`
}
