package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdg-knowledge/internal/authz"
	apperrors "sdg-knowledge/internal/errors"
	"sdg-knowledge/internal/models"
	"sdg-knowledge/internal/validator"
)

func TestTeamShow(t *testing.T) {
	ta := newTestApp(t)
	ta.teams.GetTeamFunc = func(_ context.Context, teamID int) (*models.Team, error) {
		return &models.Team{ID: teamID, Name: "Green Campus", MaxMembers: 8}, nil
	}
	ta.teams.GetRoleFunc = func(context.Context, int) (authz.Role, error) {
		return authz.TeamRoles.TeamOwner, nil
	}
	ta.teams.DefaultMaxMembersFunc = func(context.Context) int { return 6 }

	require.NoError(t, ta.run("team", "show", "7"))

	out := ta.out.String()
	assert.Contains(t, out, "Green Campus")
	assert.Contains(t, out, "Team Owner")
	assert.Contains(t, out, "8")
	assert.Contains(t, out, "6")
}

func TestTeamSetMax(t *testing.T) {
	t.Run("passes the raw input to the service", func(t *testing.T) {
		ta := newTestApp(t)
		var gotInput string
		ta.teams.UpdateMaxMembersFunc = func(_ context.Context, teamID int, input string) (*models.MessageResponse, error) {
			assert.Equal(t, 7, teamID)
			gotInput = input
			return &models.MessageResponse{Message: "Max members updated"}, nil
		}

		require.NoError(t, ta.run("team", "set-max", "7", "10"))

		assert.Equal(t, "10", gotInput)
		assert.Contains(t, ta.out.String(), "Max members updated")
	})

	t.Run("owner check failure is reported", func(t *testing.T) {
		ta := newTestApp(t)
		ta.teams.UpdateMaxMembersFunc = func(context.Context, int, string) (*models.MessageResponse, error) {
			return nil, apperrors.ErrNotTeamOwner
		}

		err := ta.run("team", "set-max", "7", "10")

		assert.ErrorIs(t, err, apperrors.ErrNotTeamOwner)
	})
}

func TestTeamInvite(t *testing.T) {
	t.Run("builds the invite list", func(t *testing.T) {
		ta := newTestApp(t)
		var got []string
		ta.teams.InviteFunc = func(_ context.Context, _ int, list *validator.InviteList) (*models.EmailInviteResponse, error) {
			got = list.Emails()
			return &models.EmailInviteResponse{
				Message: "Invitations sent",
				Invitations: []models.EmailInviteResult{
					{Email: "a@example.com", Status: "sent"},
					{Email: "b@example.com", Status: "already_member"},
				},
			}, nil
		}

		require.NoError(t, ta.run("team", "invite", "7", "a@example.com", " b@example.com "))

		assert.Equal(t, []string{"a@example.com", "b@example.com"}, got)
		assert.Contains(t, ta.out.String(), "already_member")
	})

	t.Run("invalid address stops before the request", func(t *testing.T) {
		ta := newTestApp(t)
		ta.teams.InviteFunc = func(context.Context, int, *validator.InviteList) (*models.EmailInviteResponse, error) {
			t.Fatal("invite should not be called")
			return nil, nil
		}

		err := ta.run("team", "invite", "7", "not-an-email")

		require.Error(t, err)
		assert.Equal(t, []string{validator.InvalidEmailMessage}, apperrors.UserMessages(err))
	})

	t.Run("duplicate address stops before the request", func(t *testing.T) {
		ta := newTestApp(t)

		err := ta.run("team", "invite", "7", "a@example.com", "a@example.com")

		require.Error(t, err)
		assert.Equal(t, []string{validator.DuplicateEmailMessage}, apperrors.UserMessages(err))
	})
}

func TestTeamAccept(t *testing.T) {
	ta := newTestApp(t)
	ta.teams.AcceptInvitationFunc = func(_ context.Context, token string) (*models.AcceptInvitationResponse, error) {
		assert.Equal(t, "inv-1", token)
		return &models.AcceptInvitationResponse{Message: "Joined", TeamID: 7}, nil
	}

	require.NoError(t, ta.run("team", "accept", "inv-1"))

	assert.Contains(t, ta.out.String(), "Joined")
	assert.Equal(t, []string{"view:accept_invitation", "leave:accept_invitation"}, ta.pages.events)
}
