// Package service contains the client-side business logic: validation
// before requests, role checks, activity recording and result shaping.
package service

import (
	"context"
	"time"

	"sdg-knowledge/internal/authz"
	"sdg-knowledge/internal/models"
	"sdg-knowledge/internal/permissions"
	"sdg-knowledge/internal/session"
	"sdg-knowledge/internal/validator"
)

// AuthServicer defines the interface for account operations.
type AuthServicer interface {
	SignUp(ctx context.Context, req *models.SignUpRequest) (*models.SignUpResponse, error)
	Login(ctx context.Context, token string, expiry time.Time) (*session.Session, error)
	Logout(ctx context.Context) error
	IsAdmin(ctx context.Context) (bool, error)
	Status(ctx context.Context) (*session.Session, error)
}

// ProfileServicer defines the interface for profile operations.
type ProfileServicer interface {
	GetProfile(ctx context.Context, username string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	Edit(profile *models.Profile) *ProfileEdit
}

// TeamServicer defines the interface for team operations.
type TeamServicer interface {
	GetTeam(ctx context.Context, teamID int) (*models.Team, error)
	GetRole(ctx context.Context, teamID int) (authz.Role, error)
	DefaultMaxMembers(ctx context.Context) int
	UpdateMaxMembers(ctx context.Context, teamID int, input string) (*models.MessageResponse, error)
	Invite(ctx context.Context, teamID int, list *validator.InviteList) (*models.EmailInviteResponse, error)
	AcceptInvitation(ctx context.Context, token string) (*models.AcceptInvitationResponse, error)
}

// FormServicer defines the interface for action plan operations.
type FormServicer interface {
	ListForms(ctx context.Context) (models.Listing[models.ActionPlan], error)
	ViewForm(ctx context.Context, formID int) (*models.ActionPlan, error)
	RecordEdit(ctx context.Context, formID int, content string)
	OpenPermissions(ctx context.Context, formID int) (*permissions.Editor, error)
}

// SearchServicer defines the interface for search operations.
type SearchServicer interface {
	Keywords(ctx context.Context, query string, page int) (*KeywordPage, error)
	Suggestions(ctx context.Context, query string) ([]models.PlanSearchResult, error)
	Trending(ctx context.Context) ([]models.PlanSearchResult, error)
	Recent(ctx context.Context) ([]models.PlanSearchResult, error)
	LogView(ctx context.Context, kind string, id int) error
}

// AnalyticsServicer defines the interface for activity analytics.
type AnalyticsServicer interface {
	Summary(ctx context.Context, timeRange string) (*models.AnalyticsData, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer      = (*AuthService)(nil)
	_ ProfileServicer   = (*ProfileService)(nil)
	_ TeamServicer      = (*TeamService)(nil)
	_ FormServicer      = (*FormService)(nil)
	_ SearchServicer    = (*SearchService)(nil)
	_ AnalyticsServicer = (*AnalyticsService)(nil)
)
