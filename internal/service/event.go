package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/zidepeople/runevents-api/internal/domain"
	"github.com/zidepeople/runevents-api/internal/repository"
)

var (
	ErrEventNotFound      = repository.ErrEventNotFound
	ErrEventHasReferences = repository.ErrEventHasReferences
	ErrNotEventOwner      = errors.New("caller does not own this event")
	ErrNoEditRights       = errors.New("caller cannot edit this event")
	ErrInvalidTier        = errors.New("unknown package tier")
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	FindAllPublic(ctx context.Context) ([]domain.Event, error)
	FindByOrganizer(ctx context.Context, organizerID uint) ([]domain.Event, error)
	Patch(ctx context.Context, id uint, patch domain.EventPatch) (domain.Event, error)
	Delete(ctx context.Context, id uint) error
}

type CollaboratorChecker interface {
	IsAcceptedCollaborator(ctx context.Context, eventID, userID uint) (bool, error)
}

type VendorRecommender interface {
	Recommend(ctx context.Context, category string, budget int, tier domain.PackageTier, tags []string) ([]domain.Vendor, error)
}

type ParticipationLister interface {
	ListByEvent(ctx context.Context, eventID uint) ([]domain.ParticipationStatus, error)
}

// OrganizerEvent is an event enriched with the state of its vendor
// requests, for the organizer dashboard.
type OrganizerEvent struct {
	domain.Event
	Vendors []domain.ParticipationStatus `json:"vendors"`
}

type EventService struct {
	repo           EventRepository
	collaborators  CollaboratorChecker
	vendors        VendorRecommender
	participations ParticipationLister
}

func NewEventService(repo EventRepository, collaborators CollaboratorChecker, vendors VendorRecommender, participations ParticipationLister) *EventService {
	return &EventService{
		repo:           repo,
		collaborators:  collaborators,
		vendors:        vendors,
		participations: participations,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event, organizerID uint) (domain.Event, error) {
	event.OrganizerID = organizerID
	if event.Visibility == "" {
		event.Visibility = domain.VisibilityPrivate
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

func (s *EventService) ListPublicEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindAllPublic(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllPublic -> %w", err)
	}

	return events, nil
}

func (s *EventService) ListOrganizerEvents(ctx context.Context, organizerID uint) ([]OrganizerEvent, error) {
	events, err := s.repo.FindByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByOrganizer -> %w", err)
	}

	out := make([]OrganizerEvent, len(events))
	for i, event := range events {
		vendors, err := s.participations.ListByEvent(ctx, event.ID)
		if err != nil {
			return nil, fmt.Errorf("s.participations.ListByEvent -> %w", err)
		}
		out[i] = OrganizerEvent{Event: event, Vendors: vendors}
	}

	return out, nil
}

// UpdateEvent is allowed for the owner and for accepted collaborators.
func (s *EventService) UpdateEvent(ctx context.Context, id uint, patch domain.EventPatch, callerID uint) (domain.Event, error) {
	if patch.IsEmpty() {
		return domain.Event{}, ErrEmptyPatch
	}

	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if event.OrganizerID != callerID {
		accepted, err := s.collaborators.IsAcceptedCollaborator(ctx, id, callerID)
		if err != nil {
			return domain.Event{}, fmt.Errorf("s.collaborators.IsAcceptedCollaborator -> %w", err)
		}
		if !accepted {
			return domain.Event{}, ErrNoEditRights
		}
	}

	updated, err := s.repo.Patch(ctx, id, patch)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Patch -> %w", err)
	}

	return updated, nil
}

// DeleteEvent is owner-only. Events with issued tickets or recorded
// payments are refused rather than cascaded.
func (s *EventService) DeleteEvent(ctx context.Context, id uint, callerID uint) error {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if event.OrganizerID != callerID {
		return ErrNotEventOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *EventService) RecommendVendors(ctx context.Context, category string, budget int, tier domain.PackageTier, tags []string) ([]domain.Vendor, error) {
	if !tier.IsValid() {
		return nil, ErrInvalidTier
	}

	vendors, err := s.vendors.Recommend(ctx, category, budget, tier, tags)
	if err != nil {
		return nil, fmt.Errorf("s.vendors.Recommend -> %w", err)
	}

	return vendors, nil
}
