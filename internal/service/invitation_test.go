package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zidepeople/runevents-api/internal/domain"
)

func newInvitationFixture(t *testing.T, visibility domain.Visibility) (*InvitationService, *fakeInvitationRepo, *fakeNotifier) {
	t.Helper()

	events := newFakeEventRepo()
	events.events[1] = domain.Event{
		ID:          1,
		OrganizerID: 10,
		Name:        "Launch Party",
		Date:        "2026-10-20",
		StartTime:   "18:00",
		EndTime:     "23:00",
		Location:    "Lagos",
		Visibility:  visibility,
	}

	users := newFakeUserRepo()
	users.add(domain.User{ID: 10, Email: "owner@example.com"})
	users.add(domain.User{ID: 20, Email: "helper@example.com"})

	repo := newFakeInvitationRepo()
	notifier := &fakeNotifier{}

	return NewInvitationService(repo, events, users, notifier), repo, notifier
}

func TestInvitationService_Invite(t *testing.T) {
	guests := []domain.InviteeInput{
		{Name: "Ada", Email: "ada@example.com"},
		{Name: "Ben", Email: "ben@example.com"},
	}

	t.Run("public event mints a ticket per guest", func(t *testing.T) {
		svc, repo, notifier := newInvitationFixture(t, domain.VisibilityPublic)

		result, err := svc.Invite(context.Background(), 1, guests, "see you there", 10)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Invited)
		assert.Equal(t, 2, result.NotificationsSent)
		assert.Len(t, repo.tickets, 2)
		require.Len(t, notifier.sent, 2)
		assert.Contains(t, notifier.sent[0].body, "see you there")
		assert.Contains(t, notifier.sent[0].body, "Your ticket code:")
	})

	t.Run("private event mints no tickets", func(t *testing.T) {
		svc, repo, _ := newInvitationFixture(t, domain.VisibilityPrivate)

		_, err := svc.Invite(context.Background(), 1, guests, "", 10)
		require.NoError(t, err)
		assert.Empty(t, repo.tickets)
	})

	t.Run("delivery failures do not fail the batch", func(t *testing.T) {
		svc, _, notifier := newInvitationFixture(t, domain.VisibilityPrivate)
		notifier.sendErr = errors.New("smtp down")

		result, err := svc.Invite(context.Background(), 1, guests, "", 10)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Invited)
		assert.Equal(t, 0, result.NotificationsSent)
	})

	t.Run("duplicate guests are skipped", func(t *testing.T) {
		svc, _, _ := newInvitationFixture(t, domain.VisibilityPrivate)

		_, err := svc.Invite(context.Background(), 1, guests, "", 10)
		require.NoError(t, err)

		result, err := svc.Invite(context.Background(), 1, guests, "", 10)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Invited)
	})

	t.Run("strangers cannot invite", func(t *testing.T) {
		svc, _, _ := newInvitationFixture(t, domain.VisibilityPrivate)

		_, err := svc.Invite(context.Background(), 1, guests, "", 99)
		assert.ErrorIs(t, err, ErrNoEditRights)
	})

	t.Run("accepted collaborator can invite", func(t *testing.T) {
		svc, repo, _ := newInvitationFixture(t, domain.VisibilityPrivate)
		repo.collaborators[participationKey{1, 20}] = domain.Collaborator{EventID: 1, UserID: 20, Accepted: true}

		result, err := svc.Invite(context.Background(), 1, guests, "", 20)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Invited)
	})
}

func TestInvitationService_AcceptInvite(t *testing.T) {
	svc, _, _ := newInvitationFixture(t, domain.VisibilityPrivate)
	_, err := svc.Invite(context.Background(), 1, []domain.InviteeInput{{Name: "Ada", Email: "ada@example.com"}}, "", 10)
	require.NoError(t, err)

	reply, err := svc.AcceptInvite(context.Background(), 1, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.ResponseAccepted, reply.Status)
	assert.Contains(t, reply.CalendarLink, "calendar.google.com")
	assert.Contains(t, reply.CalendarLink, "20261020T180000%2F20261020T230000")

	t.Run("replay returns the recorded outcome", func(t *testing.T) {
		again, err := svc.AcceptInvite(context.Background(), 1, "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, domain.ResponseAccepted, again.Status)
		assert.Contains(t, again.Message, "already")
	})

	t.Run("reject after accept does not flip the state", func(t *testing.T) {
		reply, err := svc.RejectInvite(context.Background(), 1, "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, domain.ResponseAccepted, reply.Status)
	})
}

func TestInvitationService_RejectInvite(t *testing.T) {
	svc, _, _ := newInvitationFixture(t, domain.VisibilityPrivate)
	_, err := svc.Invite(context.Background(), 1, []domain.InviteeInput{{Name: "Ada", Email: "ada@example.com"}}, "", 10)
	require.NoError(t, err)

	reply, err := svc.RejectInvite(context.Background(), 1, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.ResponseDeclined, reply.Status)
	assert.Empty(t, reply.CalendarLink)

	_, err = svc.AcceptInvite(context.Background(), 99, "ada@example.com")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestInvitationService_InviteCollaborator(t *testing.T) {
	t.Run("owner invites a registered user", func(t *testing.T) {
		svc, _, notifier := newInvitationFixture(t, domain.VisibilityPrivate)

		c, err := svc.InviteCollaborator(context.Background(), 1, "helper@example.com", 10)
		require.NoError(t, err)
		assert.Equal(t, uint(20), c.UserID)
		assert.Equal(t, uint(10), c.InviterID)
		assert.False(t, c.Accepted)
		assert.Len(t, notifier.sent, 1)
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		svc, _, _ := newInvitationFixture(t, domain.VisibilityPrivate)

		_, err := svc.InviteCollaborator(context.Background(), 1, "helper@example.com", 20)
		assert.ErrorIs(t, err, ErrNotEventOwner)
	})

	t.Run("self invitation is refused", func(t *testing.T) {
		svc, _, _ := newInvitationFixture(t, domain.VisibilityPrivate)

		_, err := svc.InviteCollaborator(context.Background(), 1, "owner@example.com", 10)
		assert.ErrorIs(t, err, ErrSelfCollaboration)
	})

	t.Run("unregistered email", func(t *testing.T) {
		svc, _, _ := newInvitationFixture(t, domain.VisibilityPrivate)

		_, err := svc.InviteCollaborator(context.Background(), 1, "nobody@example.com", 10)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("duplicate invitation conflicts", func(t *testing.T) {
		svc, _, _ := newInvitationFixture(t, domain.VisibilityPrivate)

		_, err := svc.InviteCollaborator(context.Background(), 1, "helper@example.com", 10)
		require.NoError(t, err)

		_, err = svc.InviteCollaborator(context.Background(), 1, "helper@example.com", 10)
		assert.ErrorIs(t, err, ErrCollaboratorExists)
	})
}

func TestInvitationService_RespondToCollaboration(t *testing.T) {
	svc, _, _ := newInvitationFixture(t, domain.VisibilityPrivate)
	_, err := svc.InviteCollaborator(context.Background(), 1, "helper@example.com", 10)
	require.NoError(t, err)

	c, err := svc.RespondToCollaboration(context.Background(), 1, 20, true)
	require.NoError(t, err)
	assert.True(t, c.Accepted)
	require.NotNil(t, c.RespondedAt)

	_, err = svc.RespondToCollaboration(context.Background(), 1, 20, false)
	assert.ErrorIs(t, err, ErrAlreadyResponded)
}
