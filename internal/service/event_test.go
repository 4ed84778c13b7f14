package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zidepeople/runevents-api/internal/domain"
	"github.com/zidepeople/runevents-api/internal/repository"
)

func newEventFixture(t *testing.T) (*EventService, *fakeEventRepo, *fakeInvitationRepo) {
	t.Helper()

	events := newFakeEventRepo()
	invitations := newFakeInvitationRepo()
	svc := NewEventService(events, invitations, newFakeVendorRepo(), newFakeParticipationRepo())

	return svc, events, invitations
}

func TestEventService_CreateEvent(t *testing.T) {
	svc, _, _ := newEventFixture(t)

	event, err := svc.CreateEvent(context.Background(), domain.Event{Name: "Launch Party"}, 10)
	require.NoError(t, err)

	assert.Equal(t, uint(10), event.OrganizerID)
	assert.Equal(t, domain.VisibilityPrivate, event.Visibility)
}

func TestEventService_UpdateEvent(t *testing.T) {
	name := "Renamed"

	t.Run("owner can edit", func(t *testing.T) {
		svc, events, _ := newEventFixture(t)
		events.events[1] = domain.Event{ID: 1, OrganizerID: 10}

		event, err := svc.UpdateEvent(context.Background(), 1, domain.EventPatch{Name: &name}, 10)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", event.Name)
	})

	t.Run("accepted collaborator can edit", func(t *testing.T) {
		svc, events, invitations := newEventFixture(t)
		events.events[1] = domain.Event{ID: 1, OrganizerID: 10}
		invitations.collaborators[participationKey{1, 20}] = domain.Collaborator{EventID: 1, UserID: 20, Accepted: true}

		_, err := svc.UpdateEvent(context.Background(), 1, domain.EventPatch{Name: &name}, 20)
		assert.NoError(t, err)
	})

	t.Run("pending collaborator cannot edit", func(t *testing.T) {
		svc, events, invitations := newEventFixture(t)
		events.events[1] = domain.Event{ID: 1, OrganizerID: 10}
		invitations.collaborators[participationKey{1, 20}] = domain.Collaborator{EventID: 1, UserID: 20}

		_, err := svc.UpdateEvent(context.Background(), 1, domain.EventPatch{Name: &name}, 20)
		assert.ErrorIs(t, err, ErrNoEditRights)
	})

	t.Run("empty patch is refused", func(t *testing.T) {
		svc, events, _ := newEventFixture(t)
		events.events[1] = domain.Event{ID: 1, OrganizerID: 10}

		_, err := svc.UpdateEvent(context.Background(), 1, domain.EventPatch{}, 10)
		assert.ErrorIs(t, err, ErrEmptyPatch)
	})
}

func TestEventService_DeleteEvent(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		svc, events, _ := newEventFixture(t)
		events.events[1] = domain.Event{ID: 1, OrganizerID: 10}

		require.NoError(t, svc.DeleteEvent(context.Background(), 1, 10))
		assert.Equal(t, []uint{1}, events.deleted)
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		svc, events, _ := newEventFixture(t)
		events.events[1] = domain.Event{ID: 1, OrganizerID: 10}

		err := svc.DeleteEvent(context.Background(), 1, 20)
		assert.ErrorIs(t, err, ErrNotEventOwner)
	})

	t.Run("referenced event is refused", func(t *testing.T) {
		svc, events, _ := newEventFixture(t)
		events.events[1] = domain.Event{ID: 1, OrganizerID: 10}
		events.delErr = repository.ErrEventHasReferences

		err := svc.DeleteEvent(context.Background(), 1, 10)
		assert.ErrorIs(t, err, ErrEventHasReferences)
	})
}

func TestEventService_RecommendVendors(t *testing.T) {
	svc, _, _ := newEventFixture(t)

	_, err := svc.RecommendVendors(context.Background(), "catering", 5000, "jumbo", nil)
	assert.ErrorIs(t, err, ErrInvalidTier)

	vendors, err := svc.RecommendVendors(context.Background(), "catering", 5000, domain.TierMedium, []string{"vegan"})
	require.NoError(t, err)
	assert.Empty(t, vendors)
}

func TestEventService_ListOrganizerEvents(t *testing.T) {
	events := newFakeEventRepo()
	events.events[1] = domain.Event{ID: 1, OrganizerID: 10}
	participations := newFakeParticipationRepo()
	participations.rows[participationKey{1, 5}] = domain.VendorParticipation{
		EventID:  1,
		VendorID: 5,
		Service:  "catering",
		Status:   domain.ResponseAccepted,
	}
	svc := NewEventService(events, newFakeInvitationRepo(), newFakeVendorRepo(), participations)

	out, err := svc.ListOrganizerEvents(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0].Vendors, 1)
	assert.Equal(t, domain.ResponseAccepted, out[0].Vendors[0].Status)
}
