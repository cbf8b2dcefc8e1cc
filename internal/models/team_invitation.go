package models

// EmailInviteRequest is the payload for api/teams/<id>/email-invite/.
type EmailInviteRequest struct {
	Emails []string `json:"emails"`
}

// EmailInviteResult is the per-address outcome reported by the server.
type EmailInviteResult struct {
	Email   string `json:"email"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// EmailInviteResponse is returned by email-invite.
type EmailInviteResponse struct {
	Message     string              `json:"message"`
	Invitations []EmailInviteResult `json:"invitations"`
}

// AcceptInvitationResponse is returned by accept-invitation.
type AcceptInvitationResponse struct {
	Message string `json:"message"`
	TeamID  int    `json:"team_id"`
}
