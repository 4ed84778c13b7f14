package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/zidepeople/runevents-api/internal/domain"
	"github.com/zidepeople/runevents-api/internal/repository"
)

var ErrTicketNotFound = repository.ErrTicketNotFound

type TicketRepository interface {
	Create(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	FindByCode(ctx context.Context, code string) (repository.ResolvedTicket, error)
	Scan(ctx context.Context, ticketID, eventID, scannedBy uint) (bool, error)
	LogsByEvent(ctx context.Context, eventID uint) ([]domain.TicketLog, error)
}

type CodeRenderer interface {
	Encode(code string) ([]byte, error)
}

type TicketService struct {
	repo     TicketRepository
	events   EventFinder
	renderer CodeRenderer
}

func NewTicketService(repo TicketRepository, events EventFinder, renderer CodeRenderer) *TicketService {
	return &TicketService{
		repo:     repo,
		events:   events,
		renderer: renderer,
	}
}

// IssueTicket mints a ticket for an existing event and renders its QR PNG.
func (s *TicketService) IssueTicket(ctx context.Context, eventID uint, email string) (domain.Ticket, []byte, error) {
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return domain.Ticket{}, nil, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	ticket, err := s.repo.Create(ctx, domain.Ticket{
		Code:    uuid.NewString(),
		EventID: eventID,
		Email:   email,
	})
	if err != nil {
		return domain.Ticket{}, nil, fmt.Errorf("s.repo.Create -> %w", err)
	}

	png, err := s.renderer.Encode(ticket.Code)
	if err != nil {
		return domain.Ticket{}, nil, fmt.Errorf("s.renderer.Encode -> %w", err)
	}

	return ticket, png, nil
}

// ValidateAndScan resolves a code and consumes the ticket. Only the
// event's organizer may scan. An already consumed ticket comes back as
// an invalid scan result, not an error.
func (s *TicketService) ValidateAndScan(ctx context.Context, code string, scannerID uint) (domain.ScanResult, error) {
	resolved, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return domain.ScanResult{}, fmt.Errorf("s.repo.FindByCode -> %w", err)
	}

	if resolved.OrganizerID != scannerID {
		return domain.ScanResult{}, ErrNotEventOwner
	}

	scanned, err := s.repo.Scan(ctx, resolved.Ticket.ID, resolved.Ticket.EventID, scannerID)
	if err != nil {
		return domain.ScanResult{}, fmt.Errorf("s.repo.Scan -> %w", err)
	}

	if !scanned {
		return domain.ScanResult{
			Status:    domain.ScanStatusInvalid,
			Reason:    "ticket already scanned",
			EventID:   resolved.Ticket.EventID,
			EventName: resolved.EventName,
		}, nil
	}

	return domain.ScanResult{
		Status:    domain.ScanStatusValid,
		EventID:   resolved.Ticket.EventID,
		EventName: resolved.EventName,
	}, nil
}

func (s *TicketService) GetLogs(ctx context.Context, eventID, requesterID uint) ([]domain.TicketLog, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	if event.OrganizerID != requesterID {
		return nil, ErrNotEventOwner
	}

	logs, err := s.repo.LogsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.LogsByEvent -> %w", err)
	}

	return logs, nil
}
