// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"
	"time"

	"sdg-knowledge/internal/authz"
	"sdg-knowledge/internal/models"
	"sdg-knowledge/internal/permissions"
	"sdg-knowledge/internal/service"
	"sdg-knowledge/internal/session"
	"sdg-knowledge/internal/validator"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	SignUpFunc  func(ctx context.Context, req *models.SignUpRequest) (*models.SignUpResponse, error)
	LoginFunc   func(ctx context.Context, token string, expiry time.Time) (*session.Session, error)
	LogoutFunc  func(ctx context.Context) error
	IsAdminFunc func(ctx context.Context) (bool, error)
	StatusFunc  func(ctx context.Context) (*session.Session, error)
}

func (m *MockAuthService) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.SignUpResponse, error) {
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, token string, expiry time.Time) (*session.Session, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, token, expiry)
	}
	return nil, nil
}

func (m *MockAuthService) Logout(ctx context.Context) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx)
	}
	return nil
}

func (m *MockAuthService) IsAdmin(ctx context.Context) (bool, error) {
	if m.IsAdminFunc != nil {
		return m.IsAdminFunc(ctx)
	}
	return false, nil
}

func (m *MockAuthService) Status(ctx context.Context) (*session.Session, error) {
	if m.StatusFunc != nil {
		return m.StatusFunc(ctx)
	}
	return nil, nil
}

// MockProfileService is a mock implementation of ProfileServicer.
type MockProfileService struct {
	GetProfileFunc    func(ctx context.Context, username string) (*models.Profile, error)
	UpdateProfileFunc func(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	EditFunc          func(profile *models.Profile) *service.ProfileEdit
}

func (m *MockProfileService) GetProfile(ctx context.Context, username string) (*models.Profile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, username)
	}
	return nil, nil
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, profile)
	}
	return nil, nil
}

func (m *MockProfileService) Edit(profile *models.Profile) *service.ProfileEdit {
	if m.EditFunc != nil {
		return m.EditFunc(profile)
	}
	return service.NewProfileEdit(profile)
}

// MockTeamService is a mock implementation of TeamServicer.
type MockTeamService struct {
	GetTeamFunc           func(ctx context.Context, teamID int) (*models.Team, error)
	GetRoleFunc           func(ctx context.Context, teamID int) (authz.Role, error)
	DefaultMaxMembersFunc func(ctx context.Context) int
	UpdateMaxMembersFunc  func(ctx context.Context, teamID int, input string) (*models.MessageResponse, error)
	InviteFunc            func(ctx context.Context, teamID int, list *validator.InviteList) (*models.EmailInviteResponse, error)
	AcceptInvitationFunc  func(ctx context.Context, token string) (*models.AcceptInvitationResponse, error)
}

func (m *MockTeamService) GetTeam(ctx context.Context, teamID int) (*models.Team, error) {
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockTeamService) GetRole(ctx context.Context, teamID int) (authz.Role, error) {
	if m.GetRoleFunc != nil {
		return m.GetRoleFunc(ctx, teamID)
	}
	return authz.TeamRoles.Member, nil
}

func (m *MockTeamService) DefaultMaxMembers(ctx context.Context) int {
	if m.DefaultMaxMembersFunc != nil {
		return m.DefaultMaxMembersFunc(ctx)
	}
	return models.DefaultMaxMembers
}

func (m *MockTeamService) UpdateMaxMembers(ctx context.Context, teamID int, input string) (*models.MessageResponse, error) {
	if m.UpdateMaxMembersFunc != nil {
		return m.UpdateMaxMembersFunc(ctx, teamID, input)
	}
	return nil, nil
}

func (m *MockTeamService) Invite(ctx context.Context, teamID int, list *validator.InviteList) (*models.EmailInviteResponse, error) {
	if m.InviteFunc != nil {
		return m.InviteFunc(ctx, teamID, list)
	}
	return nil, nil
}

func (m *MockTeamService) AcceptInvitation(ctx context.Context, token string) (*models.AcceptInvitationResponse, error) {
	if m.AcceptInvitationFunc != nil {
		return m.AcceptInvitationFunc(ctx, token)
	}
	return nil, nil
}

// MockFormService is a mock implementation of FormServicer.
type MockFormService struct {
	ListFormsFunc       func(ctx context.Context) (models.Listing[models.ActionPlan], error)
	ViewFormFunc        func(ctx context.Context, formID int) (*models.ActionPlan, error)
	RecordEditFunc      func(ctx context.Context, formID int, content string)
	OpenPermissionsFunc func(ctx context.Context, formID int) (*permissions.Editor, error)
}

func (m *MockFormService) ListForms(ctx context.Context) (models.Listing[models.ActionPlan], error) {
	if m.ListFormsFunc != nil {
		return m.ListFormsFunc(ctx)
	}
	return models.Listing[models.ActionPlan]{}, nil
}

func (m *MockFormService) ViewForm(ctx context.Context, formID int) (*models.ActionPlan, error) {
	if m.ViewFormFunc != nil {
		return m.ViewFormFunc(ctx, formID)
	}
	return nil, nil
}

func (m *MockFormService) RecordEdit(ctx context.Context, formID int, content string) {
	if m.RecordEditFunc != nil {
		m.RecordEditFunc(ctx, formID, content)
	}
}

func (m *MockFormService) OpenPermissions(ctx context.Context, formID int) (*permissions.Editor, error) {
	if m.OpenPermissionsFunc != nil {
		return m.OpenPermissionsFunc(ctx, formID)
	}
	return nil, nil
}

// MockSearchService is a mock implementation of SearchServicer.
type MockSearchService struct {
	KeywordsFunc    func(ctx context.Context, query string, page int) (*service.KeywordPage, error)
	SuggestionsFunc func(ctx context.Context, query string) ([]models.PlanSearchResult, error)
	TrendingFunc    func(ctx context.Context) ([]models.PlanSearchResult, error)
	RecentFunc      func(ctx context.Context) ([]models.PlanSearchResult, error)
	LogViewFunc     func(ctx context.Context, kind string, id int) error
}

func (m *MockSearchService) Keywords(ctx context.Context, query string, page int) (*service.KeywordPage, error) {
	if m.KeywordsFunc != nil {
		return m.KeywordsFunc(ctx, query, page)
	}
	return nil, nil
}

func (m *MockSearchService) Suggestions(ctx context.Context, query string) ([]models.PlanSearchResult, error) {
	if m.SuggestionsFunc != nil {
		return m.SuggestionsFunc(ctx, query)
	}
	return nil, nil
}

func (m *MockSearchService) Trending(ctx context.Context) ([]models.PlanSearchResult, error) {
	if m.TrendingFunc != nil {
		return m.TrendingFunc(ctx)
	}
	return nil, nil
}

func (m *MockSearchService) Recent(ctx context.Context) ([]models.PlanSearchResult, error) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx)
	}
	return nil, nil
}

func (m *MockSearchService) LogView(ctx context.Context, kind string, id int) error {
	if m.LogViewFunc != nil {
		return m.LogViewFunc(ctx, kind, id)
	}
	return nil
}

// MockAnalyticsService is a mock implementation of AnalyticsServicer.
type MockAnalyticsService struct {
	SummaryFunc func(ctx context.Context, timeRange string) (*models.AnalyticsData, error)
}

func (m *MockAnalyticsService) Summary(ctx context.Context, timeRange string) (*models.AnalyticsData, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, timeRange)
	}
	return nil, nil
}

// Ensure mocks implement interfaces
var (
	_ service.AuthServicer      = (*MockAuthService)(nil)
	_ service.ProfileServicer   = (*MockProfileService)(nil)
	_ service.TeamServicer      = (*MockTeamService)(nil)
	_ service.FormServicer      = (*MockFormService)(nil)
	_ service.SearchServicer    = (*MockSearchService)(nil)
	_ service.AnalyticsServicer = (*MockAnalyticsService)(nil)
)
