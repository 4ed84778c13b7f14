package repository

import (
	"context"
	"fmt"

	"github.com/zidepeople/runevents-api/internal/domain"
	"github.com/zidepeople/runevents-api/internal/repository/dao"
)

var ErrTicketNotFound = dao.ErrTicketNotFound

// ResolvedTicket is a ticket together with the event fields a scan
// decision needs.
type ResolvedTicket struct {
	Ticket      domain.Ticket
	EventName   string
	OrganizerID uint
}

type TicketRepository struct {
	dao *dao.TicketDAO
}

func NewTicketRepository(dao *dao.TicketDAO) *TicketRepository {
	return &TicketRepository{
		dao: dao,
	}
}

func (r *TicketRepository) daoToDomain(t dao.Ticket) domain.Ticket {
	return domain.Ticket{
		ID:        t.ID,
		Code:      t.Code,
		EventID:   t.EventID,
		Email:     t.Email,
		UserID:    t.UserID,
		IsScanned: t.IsScanned,
		CreatedAt: t.CreatedAt,
	}
}

func (r *TicketRepository) Create(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	created, err := r.dao.Insert(ctx, dao.Ticket{
		Code:    ticket.Code,
		EventID: ticket.EventID,
		Email:   ticket.Email,
		UserID:  ticket.UserID,
	})
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TicketRepository) FindByCode(ctx context.Context, code string) (ResolvedTicket, error) {
	found, err := r.dao.FindByCode(ctx, code)
	if err != nil {
		return ResolvedTicket{}, fmt.Errorf("r.dao.FindByCode -> %w", err)
	}

	return ResolvedTicket{
		Ticket:      r.daoToDomain(found.Ticket),
		EventName:   found.EventName,
		OrganizerID: found.OrganizerID,
	}, nil
}

// Scan reports whether this call transitioned the ticket to scanned.
func (r *TicketRepository) Scan(ctx context.Context, ticketID, eventID, scannedBy uint) (bool, error) {
	scanned, err := r.dao.Scan(ctx, ticketID, eventID, scannedBy)
	if err != nil {
		return false, fmt.Errorf("r.dao.Scan -> %w", err)
	}

	return scanned, nil
}

func (r *TicketRepository) LogsByEvent(ctx context.Context, eventID uint) ([]domain.TicketLog, error) {
	rows, err := r.dao.LogsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.LogsByEvent -> %w", err)
	}

	logs := make([]domain.TicketLog, len(rows))
	for i, row := range rows {
		logs[i] = domain.TicketLog{
			ID:        row.ID,
			TicketID:  row.TicketID,
			EventID:   row.EventID,
			ScannedBy: row.ScannedBy,
			ScannedAt: row.ScannedAt,
		}
	}

	return logs, nil
}
