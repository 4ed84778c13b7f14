package service

import (
	"context"
	"fmt"

	"github.com/zidepeople/runevents-api/internal/domain"
	"github.com/zidepeople/runevents-api/internal/repository"
)

var (
	ErrParticipationExists   = repository.ErrParticipationExists
	ErrParticipationNotFound = repository.ErrParticipationNotFound
	ErrAlreadyResponded      = repository.ErrAlreadyResponded
)

type ParticipationRepository interface {
	Create(ctx context.Context, p domain.VendorParticipation) (domain.VendorParticipation, error)
	Respond(ctx context.Context, eventID, vendorID uint, accepted bool) (domain.VendorParticipation, error)
	ListByEvent(ctx context.Context, eventID uint) ([]domain.ParticipationStatus, error)
	ListPendingByVendor(ctx context.Context, vendorID uint) ([]domain.PendingRequest, error)
}

type EventFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

type VendorFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Vendor, error)
}

type ParticipationService struct {
	repo    ParticipationRepository
	events  EventFinder
	vendors VendorFinder
}

func NewParticipationService(repo ParticipationRepository, events EventFinder, vendors VendorFinder) *ParticipationService {
	return &ParticipationService{
		repo:    repo,
		events:  events,
		vendors: vendors,
	}
}

// RequestVendor records a pending participation request. Only the event
// owner may send one, and at most one row exists per (event, vendor).
func (s *ParticipationService) RequestVendor(ctx context.Context, eventID, vendorID uint, serviceToRender string, price int, requesterID uint) (domain.VendorParticipation, error) {
	if _, err := s.vendors.FindByID(ctx, vendorID); err != nil {
		return domain.VendorParticipation{}, fmt.Errorf("s.vendors.FindByID -> %w", err)
	}

	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return domain.VendorParticipation{}, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	if event.OrganizerID != requesterID {
		return domain.VendorParticipation{}, ErrNotEventOwner
	}

	created, err := s.repo.Create(ctx, domain.VendorParticipation{
		EventID:  eventID,
		VendorID: vendorID,
		Service:  serviceToRender,
		Price:    price,
	})
	if err != nil {
		return domain.VendorParticipation{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// RespondToRequest finalizes a pending request on behalf of the vendor.
// A second response is refused with ErrAlreadyResponded.
func (s *ParticipationService) RespondToRequest(ctx context.Context, eventID, vendorID uint, accepted bool) (domain.VendorParticipation, error) {
	responded, err := s.repo.Respond(ctx, eventID, vendorID, accepted)
	if err != nil {
		return domain.VendorParticipation{}, fmt.Errorf("s.repo.Respond -> %w", err)
	}

	return responded, nil
}

func (s *ParticipationService) ListEventRequests(ctx context.Context, eventID, requesterID uint) ([]domain.ParticipationStatus, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	if event.OrganizerID != requesterID {
		return nil, ErrNotEventOwner
	}

	statuses, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByEvent -> %w", err)
	}

	return statuses, nil
}

func (s *ParticipationService) ListPendingRequests(ctx context.Context, vendorID uint) ([]domain.PendingRequest, error) {
	pending, err := s.repo.ListPendingByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListPendingByVendor -> %w", err)
	}

	return pending, nil
}
