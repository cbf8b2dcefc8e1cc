package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sdg-knowledge/internal/authz"
	apperrors "sdg-knowledge/internal/errors"
	"sdg-knowledge/internal/models"
	"sdg-knowledge/internal/service/apimocks"
	"sdg-knowledge/internal/validator"
	"sdg-knowledge/test/testutil"
)

func TestTeamService_GetRole(t *testing.T) {
	tests := []struct {
		name      string
		resp      *models.TeamRoleResponse
		err       error
		expected  authz.Role
		expectErr bool
	}{
		{"owner", &models.TeamRoleResponse{Role: "owner"}, nil, authz.TeamRoles.TeamOwner, false},
		{"admin", &models.TeamRoleResponse{Role: "admin"}, nil, authz.TeamRoles.Admin, false},
		{"unknown role is member", &models.TeamRoleResponse{Role: "guest"}, nil, authz.TeamRoles.Member, false},
		{"not a member", nil, &apperrors.APIError{StatusCode: 404}, authz.TeamRoles.Member, false},
		{"server error", nil, &apperrors.APIError{StatusCode: 500}, authz.TeamRoles.Member, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockAPI := apimocks.NewMockTeamAPI(ctrl)

			mockAPI.EXPECT().GetTeamRole(gomock.Any(), 3).Return(tt.resp, tt.err)

			service := NewTeamService(mockAPI)
			role, err := service.GetRole(testutil.Context(t), 3)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.True(t, tt.expected.SameTitle(role))
		})
	}
}

func TestTeamService_DefaultMaxMembers(t *testing.T) {
	tests := []struct {
		name     string
		settings *models.GlobalSettings
		err      error
		expected int
	}{
		{"configured value", &models.GlobalSettings{DefaultMaxMembers: 10}, nil, 10},
		{"missing value", &models.GlobalSettings{}, nil, 6},
		{"fetch failure", nil, errors.New("dial tcp: refused"), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockAPI := apimocks.NewMockTeamAPI(ctrl)

			mockAPI.EXPECT().GetGlobalSettings(gomock.Any()).Return(tt.settings, tt.err)

			service := NewTeamService(mockAPI)

			assert.Equal(t, tt.expected, service.DefaultMaxMembers(testutil.Context(t)))
		})
	}
}

func TestTeamService_UpdateMaxMembers(t *testing.T) {
	t.Run("invalid input sends nothing", func(t *testing.T) {
		for _, input := range []string{"", "0", "-1", "ten"} {
			ctrl := gomock.NewController(t)
			mockAPI := apimocks.NewMockTeamAPI(ctrl)

			service := NewTeamService(mockAPI)
			_, err := service.UpdateMaxMembers(testutil.Context(t), 3, input)

			var fe validator.FieldErrors
			assert.True(t, errors.As(err, &fe), "input %q", input)
		}
	})

	t.Run("only the owner may update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockAPI := apimocks.NewMockTeamAPI(ctrl)

		mockAPI.EXPECT().GetTeamRole(gomock.Any(), 3).Return(&models.TeamRoleResponse{Role: "admin", CanInvite: true}, nil)

		service := NewTeamService(mockAPI)
		_, err := service.UpdateMaxMembers(testutil.Context(t), 3, "8")

		assert.ErrorIs(t, err, apperrors.ErrNotTeamOwner)
	})

	t.Run("owner updates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockAPI := apimocks.NewMockTeamAPI(ctrl)

		gomock.InOrder(
			mockAPI.EXPECT().GetTeamRole(gomock.Any(), 3).Return(&models.TeamRoleResponse{Role: "owner"}, nil),
			mockAPI.EXPECT().UpdateMaxMembers(gomock.Any(), 3, 8).Return(&models.MessageResponse{Message: "Max members updated"}, nil),
		)

		service := NewTeamService(mockAPI)
		resp, err := service.UpdateMaxMembers(testutil.Context(t), 3, " 8 ")

		require.NoError(t, err)
		assert.Equal(t, "Max members updated", resp.Message)
	})

	t.Run("server failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockAPI := apimocks.NewMockTeamAPI(ctrl)

		mockAPI.EXPECT().GetTeamRole(gomock.Any(), 3).Return(&models.TeamRoleResponse{Role: "owner"}, nil)
		mockAPI.EXPECT().UpdateMaxMembers(gomock.Any(), 3, 2).Return(nil, &apperrors.APIError{StatusCode: 400, Message: "Team already has 4 members"})

		service := NewTeamService(mockAPI)
		_, err := service.UpdateMaxMembers(testutil.Context(t), 3, "2")

		assert.ErrorIs(t, err, apperrors.ErrMaxMembersNotUpdated)
		assert.Equal(t, []string{"Team already has 4 members"}, apperrors.UserMessages(err))
	})
}

func TestTeamService_Invite(t *testing.T) {
	t.Run("empty list sends nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockAPI := apimocks.NewMockTeamAPI(ctrl)

		service := NewTeamService(mockAPI)
		_, err := service.Invite(testutil.Context(t), 3, &validator.InviteList{})

		assert.Equal(t, validator.FieldErrors{"emails": validator.EmptyInviteListMessage}, err)
	})

	t.Run("member without invite right is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockAPI := apimocks.NewMockTeamAPI(ctrl)
		list := &validator.InviteList{}
		require.NoError(t, list.Add("a@example.com"))

		mockAPI.EXPECT().GetTeamRole(gomock.Any(), 3).Return(&models.TeamRoleResponse{Role: "member"}, nil)

		service := NewTeamService(mockAPI)
		_, err := service.Invite(testutil.Context(t), 3, list)

		assert.ErrorIs(t, err, apperrors.ErrCannotInvite)
		assert.Equal(t, []string{"a@example.com"}, list.Emails())
	})

	t.Run("member with can_invite sends and clears the list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockAPI := apimocks.NewMockTeamAPI(ctrl)
		list := &validator.InviteList{}
		require.NoError(t, list.Add("a@example.com"))
		require.NoError(t, list.Add("b@example.com"))

		mockAPI.EXPECT().GetTeamRole(gomock.Any(), 3).Return(&models.TeamRoleResponse{Role: "member", CanInvite: true}, nil)
		mockAPI.EXPECT().
			EmailInvite(gomock.Any(), 3, []string{"a@example.com", "b@example.com"}).
			Return(&models.EmailInviteResponse{Message: "Invitations sent"}, nil)

		service := NewTeamService(mockAPI)
		resp, err := service.Invite(testutil.Context(t), 3, list)

		require.NoError(t, err)
		assert.Equal(t, "Invitations sent", resp.Message)
		assert.Empty(t, list.Emails())
	})
}

func TestTeamService_AcceptInvitation(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		service := NewTeamService(apimocks.NewMockTeamAPI(ctrl))
		_, err := service.AcceptInvitation(testutil.Context(t), "")

		assert.ErrorIs(t, err, apperrors.ErrInvitationNotUsable)
	})

	t.Run("joins the team", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockAPI := apimocks.NewMockTeamAPI(ctrl)

		mockAPI.EXPECT().AcceptInvitation(gomock.Any(), "abc").Return(&models.AcceptInvitationResponse{Message: "Joined", TeamID: 3}, nil)

		service := NewTeamService(mockAPI)
		resp, err := service.AcceptInvitation(testutil.Context(t), "abc")

		require.NoError(t, err)
		assert.Equal(t, 3, resp.TeamID)
	})
}
