package service

import (
	"context"
	"time"

	"sdg-knowledge/internal/models"
	"sdg-knowledge/internal/permissions"
	"sdg-knowledge/internal/session"
)

//go:generate mockgen -destination=apimocks/mock_api.go -package=apimocks sdg-knowledge/internal/service AuthAPI,FormAPI,SearchAPI,TeamAPI

// AuthAPI is the account part of the API client.
type AuthAPI interface {
	PendingRegister(ctx context.Context, req *models.SignUpRequest) (*models.SignUpResponse, error)
	Logout(ctx context.Context) (int, error)
	AdminCheck(ctx context.Context) (*models.AdminCheckResponse, error)
	GetProfile(ctx context.Context, username string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error)
}

// TeamAPI is the team part of the API client.
type TeamAPI interface {
	GetTeam(ctx context.Context, teamID int) (*models.Team, error)
	GetTeamRole(ctx context.Context, teamID int) (*models.TeamRoleResponse, error)
	GetGlobalSettings(ctx context.Context) (*models.GlobalSettings, error)
	UpdateMaxMembers(ctx context.Context, teamID, maxMembers int) (*models.MessageResponse, error)
	EmailInvite(ctx context.Context, teamID int, emails []string) (*models.EmailInviteResponse, error)
	AcceptInvitation(ctx context.Context, token string) (*models.AcceptInvitationResponse, error)
}

// FormAPI is the action plan part of the API client.
type FormAPI interface {
	permissions.FormsAPI
	ListForms(ctx context.Context) (models.Listing[models.ActionPlan], error)
}

// SearchAPI is the keyword and plan search part of the API client.
type SearchAPI interface {
	SearchKeywords(ctx context.Context, search string, page int) (models.Listing[models.Keyword], error)
	SearchPlans(ctx context.Context, kind, q string) ([]models.PlanSearchResult, error)
	TopEducations(ctx context.Context) ([]string, error)
	TopActions(ctx context.Context) ([]string, error)
	LogEducationView(ctx context.Context, educationID int) error
	LogActionView(ctx context.Context, actionID int) error
	UserInteractions(ctx context.Context, userID int) (*models.UserInteractions, error)
}

// Sessions is the session lifecycle used by the services.
type Sessions interface {
	Current(ctx context.Context) (*session.Session, error)
	Start(ctx context.Context, token string, expiry time.Time, user *models.UserDetails) (*session.Session, error)
	End(ctx context.Context) error
}

// Tracker records user activity. Sends never block and never fail.
type Tracker interface {
	TrackSearch(page, query string)
	TrackFormView(formID int)
	TrackFormEdit(formID int, content string)
}
