package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zidepeople/runevents-api/internal/domain"
	"github.com/zidepeople/runevents-api/internal/repository/dao"
)

var (
	ErrEventNotFound      = dao.ErrEventNotFound
	ErrEventHasReferences = dao.ErrEventHasReferences
)

type EventRepository struct {
	dao *dao.EventDAO
}

func NewEventRepository(dao *dao.EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) daoToDomain(e dao.Event) (domain.Event, error) {
	var breakdown []domain.BudgetEntry
	if len(e.BudgetBreakdown) > 0 {
		if err := json.Unmarshal(e.BudgetBreakdown, &breakdown); err != nil {
			return domain.Event{}, fmt.Errorf("unmarshal budget breakdown -> %w", err)
		}
	}

	return domain.Event{
		ID:                 e.ID,
		OrganizerID:        e.OrganizerID,
		Name:               e.Name,
		Date:               e.Date,
		StartTime:          e.StartTime,
		EndTime:            e.EndTime,
		Location:           e.Location,
		MinGuests:          e.MinGuests,
		MaxGuests:          e.MaxGuests,
		Description:        e.Description,
		TotalBudget:        e.TotalBudget,
		TicketPrice:        e.TicketPrice,
		Visibility:         domain.Visibility(e.Visibility),
		HasInvitedGuests:   e.HasInvitedGuests,
		HasAcceptedVendors: e.HasAcceptedVendors,
		BudgetBreakdown:    breakdown,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}, nil
}

func (r *EventRepository) daosToDomain(events []dao.Event) ([]domain.Event, error) {
	out := make([]domain.Event, len(events))
	for i, e := range events {
		converted, err := r.daoToDomain(e)
		if err != nil {
			return nil, err
		}
		out[i] = converted
	}

	return out, nil
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	breakdown, err := json.Marshal(event.BudgetBreakdown)
	if err != nil {
		return domain.Event{}, fmt.Errorf("marshal budget breakdown -> %w", err)
	}

	created, err := r.dao.Insert(ctx, dao.Event{
		OrganizerID:     event.OrganizerID,
		Name:            event.Name,
		Date:            event.Date,
		StartTime:       event.StartTime,
		EndTime:         event.EndTime,
		Location:        event.Location,
		MinGuests:       event.MinGuests,
		MaxGuests:       event.MaxGuests,
		Description:     event.Description,
		TotalBudget:     event.TotalBudget,
		TicketPrice:     event.TicketPrice,
		Visibility:      string(event.Visibility),
		BudgetBreakdown: breakdown,
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created)
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	event, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(event)
}

func (r *EventRepository) FindAllPublic(ctx context.Context) ([]domain.Event, error) {
	events, err := r.dao.FindAllPublic(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllPublic -> %w", err)
	}

	return r.daosToDomain(events)
}

func (r *EventRepository) FindByOrganizer(ctx context.Context, organizerID uint) ([]domain.Event, error) {
	events, err := r.dao.FindByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByOrganizer -> %w", err)
	}

	return r.daosToDomain(events)
}

func (r *EventRepository) Patch(ctx context.Context, id uint, patch domain.EventPatch) (domain.Event, error) {
	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Date != nil {
		fields["date"] = *patch.Date
	}
	if patch.StartTime != nil {
		fields["start_time"] = *patch.StartTime
	}
	if patch.EndTime != nil {
		fields["end_time"] = *patch.EndTime
	}
	if patch.Location != nil {
		fields["location"] = *patch.Location
	}
	if patch.MinGuests != nil {
		fields["min_guests"] = *patch.MinGuests
	}
	if patch.MaxGuests != nil {
		fields["max_guests"] = *patch.MaxGuests
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.TotalBudget != nil {
		fields["total_budget"] = *patch.TotalBudget
	}
	if patch.TicketPrice != nil {
		fields["ticket_price"] = *patch.TicketPrice
	}
	if patch.Visibility != nil {
		fields["visibility"] = string(*patch.Visibility)
	}
	if patch.BudgetBreakdown != nil {
		raw, err := json.Marshal(*patch.BudgetBreakdown)
		if err != nil {
			return domain.Event{}, fmt.Errorf("marshal budget breakdown -> %w", err)
		}
		fields["budget_breakdown"] = raw
	}

	updated, err := r.dao.Update(ctx, id, fields)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated)
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
