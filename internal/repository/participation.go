package repository

import (
	"context"
	"fmt"

	"github.com/zidepeople/runevents-api/internal/domain"
	"github.com/zidepeople/runevents-api/internal/repository/dao"
)

var (
	ErrParticipationExists   = dao.ErrParticipationExists
	ErrParticipationNotFound = dao.ErrParticipationNotFound
	ErrAlreadyResponded      = dao.ErrAlreadyResponded
)

type ParticipationRepository struct {
	dao *dao.ParticipationDAO
}

func NewParticipationRepository(dao *dao.ParticipationDAO) *ParticipationRepository {
	return &ParticipationRepository{
		dao: dao,
	}
}

func (r *ParticipationRepository) daoToDomain(p dao.Participation) domain.VendorParticipation {
	return domain.VendorParticipation{
		EventID:   p.EventID,
		VendorID:  p.ServiceProviderID,
		Service:   p.Service,
		Price:     p.Price,
		Status:    domain.ResponseStatus(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (r *ParticipationRepository) Create(ctx context.Context, p domain.VendorParticipation) (domain.VendorParticipation, error) {
	created, err := r.dao.Insert(ctx, dao.Participation{
		EventID:           p.EventID,
		ServiceProviderID: p.VendorID,
		Service:           p.Service,
		Price:             p.Price,
		Status:            string(domain.ResponsePending),
	})
	if err != nil {
		return domain.VendorParticipation{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ParticipationRepository) FindByEventAndVendor(ctx context.Context, eventID, vendorID uint) (domain.VendorParticipation, error) {
	p, err := r.dao.FindByEventAndVendor(ctx, eventID, vendorID)
	if err != nil {
		return domain.VendorParticipation{}, fmt.Errorf("r.dao.FindByEventAndVendor -> %w", err)
	}

	return r.daoToDomain(p), nil
}

// Respond finalizes the request; the budget append and flag update ride
// in the same transaction inside the dao.
func (r *ParticipationRepository) Respond(ctx context.Context, eventID, vendorID uint, accepted bool) (domain.VendorParticipation, error) {
	p, err := r.dao.Respond(ctx, eventID, vendorID, accepted)
	if err != nil {
		return domain.VendorParticipation{}, fmt.Errorf("r.dao.Respond -> %w", err)
	}

	return r.daoToDomain(p), nil
}

func (r *ParticipationRepository) ListByEvent(ctx context.Context, eventID uint) ([]domain.ParticipationStatus, error) {
	rows, err := r.dao.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByEvent -> %w", err)
	}

	statuses := make([]domain.ParticipationStatus, len(rows))
	for i, row := range rows {
		statuses[i] = domain.ParticipationStatus{
			VendorID:   row.ServiceProviderID,
			VendorName: row.VendorName,
			Service:    row.Service,
			Price:      row.Price,
			Status:     domain.ResponseStatus(row.Status),
		}
	}

	return statuses, nil
}

func (r *ParticipationRepository) ListPendingByVendor(ctx context.Context, vendorID uint) ([]domain.PendingRequest, error) {
	rows, err := r.dao.ListPendingByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListPendingByVendor -> %w", err)
	}

	pending := make([]domain.PendingRequest, len(rows))
	for i, row := range rows {
		pending[i] = domain.PendingRequest{
			EventID:   row.EventID,
			EventName: row.EventName,
			EventDate: row.EventDate,
			Location:  row.Location,
			Service:   row.Service,
			Price:     row.Price,
		}
	}

	return pending, nil
}
