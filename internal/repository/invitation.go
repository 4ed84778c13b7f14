package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/zidepeople/runevents-api/internal/domain"
	"github.com/zidepeople/runevents-api/internal/repository/dao"
)

var (
	ErrInviteeNotFound      = dao.ErrInviteeNotFound
	ErrInviteeExists        = dao.ErrInviteeExists
	ErrCollaboratorExists   = dao.ErrCollaboratorExists
	ErrCollaboratorNotFound = dao.ErrCollaboratorNotFound
)

type InvitationRepository struct {
	dao *dao.InvitationDAO
}

func NewInvitationRepository(dao *dao.InvitationDAO) *InvitationRepository {
	return &InvitationRepository{
		dao: dao,
	}
}

func (r *InvitationRepository) inviteeDaoToDomain(i dao.Invitee) domain.Invitee {
	return domain.Invitee{
		ID:         i.ID,
		EventID:    i.EventID,
		Name:       i.Name,
		Email:      i.Email,
		TicketCode: i.TicketCode,
		Status:     domain.ResponseStatus(i.Status),
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

func (r *InvitationRepository) collaboratorDaoToDomain(c dao.Collaborator) domain.Collaborator {
	return domain.Collaborator{
		ID:          c.ID,
		EventID:     c.EventID,
		UserID:      c.UserID,
		InviterID:   c.InviterID,
		Accepted:    c.Accepted,
		RespondedAt: c.RespondedAt,
		CreatedAt:   c.CreatedAt,
	}
}

// CreateInvitee persists the invitee and, for public events, the ticket
// minted for it, as one atomic unit.
func (r *InvitationRepository) CreateInvitee(ctx context.Context, invitee domain.Invitee, ticket *domain.Ticket) (domain.Invitee, error) {
	var daoTicket *dao.Ticket
	if ticket != nil {
		daoTicket = &dao.Ticket{
			Code:    ticket.Code,
			EventID: ticket.EventID,
			Email:   ticket.Email,
			UserID:  ticket.UserID,
		}
	}

	created, err := r.dao.InsertInvitee(ctx, dao.Invitee{
		EventID:    invitee.EventID,
		Email:      invitee.Email,
		Name:       invitee.Name,
		TicketCode: invitee.TicketCode,
		Status:     string(domain.ResponsePending),
	}, daoTicket)
	if err != nil {
		return domain.Invitee{}, fmt.Errorf("r.dao.InsertInvitee -> %w", err)
	}

	return r.inviteeDaoToDomain(created), nil
}

func (r *InvitationRepository) FindInvitee(ctx context.Context, eventID uint, email string) (domain.Invitee, error) {
	invitee, err := r.dao.FindInvitee(ctx, eventID, email)
	if err != nil {
		return domain.Invitee{}, fmt.Errorf("r.dao.FindInvitee -> %w", err)
	}

	return r.inviteeDaoToDomain(invitee), nil
}

func (r *InvitationRepository) RespondInvitee(ctx context.Context, eventID uint, email string, accepted bool) (domain.Invitee, bool, error) {
	invitee, already, err := r.dao.RespondInvitee(ctx, eventID, email, accepted)
	if err != nil {
		return domain.Invitee{}, false, fmt.Errorf("r.dao.RespondInvitee -> %w", err)
	}

	return r.inviteeDaoToDomain(invitee), already, nil
}

func (r *InvitationRepository) ListInviteesByEvent(ctx context.Context, eventID uint) ([]domain.Invitee, error) {
	rows, err := r.dao.ListInviteesByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListInviteesByEvent -> %w", err)
	}

	invitees := make([]domain.Invitee, len(rows))
	for i, row := range rows {
		invitees[i] = r.inviteeDaoToDomain(row)
	}

	return invitees, nil
}

func (r *InvitationRepository) CreateCollaborator(ctx context.Context, c domain.Collaborator) (domain.Collaborator, error) {
	created, err := r.dao.InsertCollaborator(ctx, dao.Collaborator{
		EventID:   c.EventID,
		UserID:    c.UserID,
		InviterID: c.InviterID,
	})
	if err != nil {
		return domain.Collaborator{}, fmt.Errorf("r.dao.InsertCollaborator -> %w", err)
	}

	return r.collaboratorDaoToDomain(created), nil
}

func (r *InvitationRepository) FindCollaborator(ctx context.Context, eventID, userID uint) (domain.Collaborator, error) {
	c, err := r.dao.FindCollaborator(ctx, eventID, userID)
	if err != nil {
		return domain.Collaborator{}, fmt.Errorf("r.dao.FindCollaborator -> %w", err)
	}

	return r.collaboratorDaoToDomain(c), nil
}

func (r *InvitationRepository) RespondCollaboration(ctx context.Context, eventID, userID uint, accepted bool) (domain.Collaborator, error) {
	c, err := r.dao.RespondCollaboration(ctx, eventID, userID, accepted, time.Now())
	if err != nil {
		return domain.Collaborator{}, fmt.Errorf("r.dao.RespondCollaboration -> %w", err)
	}

	return r.collaboratorDaoToDomain(c), nil
}

func (r *InvitationRepository) IsAcceptedCollaborator(ctx context.Context, eventID, userID uint) (bool, error) {
	ok, err := r.dao.IsAcceptedCollaborator(ctx, eventID, userID)
	if err != nil {
		return false, fmt.Errorf("r.dao.IsAcceptedCollaborator -> %w", err)
	}

	return ok, nil
}
