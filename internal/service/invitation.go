package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zidepeople/runevents-api/internal/domain"
	"github.com/zidepeople/runevents-api/internal/repository"
)

var (
	ErrInviteeNotFound      = repository.ErrInviteeNotFound
	ErrInviteeExists        = repository.ErrInviteeExists
	ErrCollaboratorExists   = repository.ErrCollaboratorExists
	ErrCollaboratorNotFound = repository.ErrCollaboratorNotFound
	ErrSelfCollaboration    = errors.New("organizer cannot collaborate on their own event")
)

type InvitationRepository interface {
	CreateInvitee(ctx context.Context, invitee domain.Invitee, ticket *domain.Ticket) (domain.Invitee, error)
	RespondInvitee(ctx context.Context, eventID uint, email string, accepted bool) (domain.Invitee, bool, error)
	ListInviteesByEvent(ctx context.Context, eventID uint) ([]domain.Invitee, error)
	CreateCollaborator(ctx context.Context, c domain.Collaborator) (domain.Collaborator, error)
	RespondCollaboration(ctx context.Context, eventID, userID uint, accepted bool) (domain.Collaborator, error)
	IsAcceptedCollaborator(ctx context.Context, eventID, userID uint) (bool, error)
}

type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// Notifier delivers guest and collaborator emails. Delivery failures are
// logged and never fail the inviting request.
type Notifier interface {
	Send(toAddress, subject, body string) error
	ResponseLink(eventID uint, email string) string
}

type InvitationService struct {
	repo     InvitationRepository
	events   EventFinder
	users    UserFinder
	notifier Notifier
}

func NewInvitationService(repo InvitationRepository, events EventFinder, users UserFinder, notifier Notifier) *InvitationService {
	return &InvitationService{
		repo:     repo,
		events:   events,
		users:    users,
		notifier: notifier,
	}
}

// Invite persists an invitee row per guest and fans out notification
// emails best-effort. Guests of public events get a ticket minted in the
// same transaction as their row. Duplicate guests are skipped.
func (s *InvitationService) Invite(ctx context.Context, eventID uint, invitees []domain.InviteeInput, message string, requesterID uint) (domain.InviteResult, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return domain.InviteResult{}, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	if event.OrganizerID != requesterID {
		accepted, err := s.repo.IsAcceptedCollaborator(ctx, eventID, requesterID)
		if err != nil {
			return domain.InviteResult{}, fmt.Errorf("s.repo.IsAcceptedCollaborator -> %w", err)
		}
		if !accepted {
			return domain.InviteResult{}, ErrNoEditRights
		}
	}

	var result domain.InviteResult
	for _, input := range invitees {
		invitee := domain.Invitee{
			EventID: eventID,
			Name:    input.Name,
			Email:   input.Email,
		}

		var ticket *domain.Ticket
		if event.IsPublic() {
			invitee.TicketCode = uuid.NewString()
			ticket = &domain.Ticket{
				Code:    invitee.TicketCode,
				EventID: eventID,
				Email:   input.Email,
			}
		}

		created, err := s.repo.CreateInvitee(ctx, invitee, ticket)
		if err != nil {
			if errors.Is(err, repository.ErrInviteeExists) {
				continue
			}

			return domain.InviteResult{}, fmt.Errorf("s.repo.CreateInvitee -> %w", err)
		}
		result.Invited++

		if err := s.notifier.Send(created.Email, "You're invited to "+event.Name, s.inviteBody(event, created, message)); err != nil {
			zap.L().Warn("invite email not delivered",
				zap.Uint("event_id", eventID),
				zap.String("email", created.Email),
				zap.Error(err))
			continue
		}
		result.NotificationsSent++
	}

	return result, nil
}

func (s *InvitationService) inviteBody(event domain.Event, invitee domain.Invitee, message string) string {
	body := fmt.Sprintf("Hello %s,\n\nYou have been invited to %s on %s at %s.\n",
		invitee.Name, event.Name, event.Date, event.Location)
	if message != "" {
		body += "\n" + message + "\n"
	}
	if invitee.TicketCode != "" {
		body += "\nYour ticket code: " + invitee.TicketCode + "\n"
	}
	body += "\nRespond here: " + s.notifier.ResponseLink(event.ID, invitee.Email) + "\n"

	return body
}

// AcceptInvite marks the invitation accepted. Replays of a decided
// invitation return the recorded outcome without mutating it.
func (s *InvitationService) AcceptInvite(ctx context.Context, eventID uint, email string) (domain.InviteReply, error) {
	invitee, already, err := s.repo.RespondInvitee(ctx, eventID, email, true)
	if err != nil {
		return domain.InviteReply{}, fmt.Errorf("s.repo.RespondInvitee -> %w", err)
	}

	reply := domain.InviteReply{Status: invitee.Status}
	switch {
	case already:
		reply.Message = "invitation already " + string(invitee.Status)
	case invitee.Status == domain.ResponseAccepted:
		reply.Message = "invitation accepted"
	}

	if invitee.Status == domain.ResponseAccepted {
		event, err := s.events.FindByID(ctx, eventID)
		if err != nil {
			return domain.InviteReply{}, fmt.Errorf("s.events.FindByID -> %w", err)
		}
		reply.CalendarLink = calendarLink(event)
	}

	return reply, nil
}

func (s *InvitationService) RejectInvite(ctx context.Context, eventID uint, email string) (domain.InviteReply, error) {
	invitee, already, err := s.repo.RespondInvitee(ctx, eventID, email, false)
	if err != nil {
		return domain.InviteReply{}, fmt.Errorf("s.repo.RespondInvitee -> %w", err)
	}

	reply := domain.InviteReply{Status: invitee.Status}
	if already {
		reply.Message = "invitation already " + string(invitee.Status)
	} else {
		reply.Message = "invitation declined"
	}

	return reply, nil
}

// InviteCollaborator adds a co-organizer by email. Owner only; the owner
// cannot invite themself.
func (s *InvitationService) InviteCollaborator(ctx context.Context, eventID uint, email string, organizerID uint) (domain.Collaborator, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return domain.Collaborator{}, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	if event.OrganizerID != organizerID {
		return domain.Collaborator{}, ErrNotEventOwner
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return domain.Collaborator{}, fmt.Errorf("s.users.FindByEmail -> %w", err)
	}

	if user.ID == organizerID {
		return domain.Collaborator{}, ErrSelfCollaboration
	}

	created, err := s.repo.CreateCollaborator(ctx, domain.Collaborator{
		EventID:   eventID,
		UserID:    user.ID,
		InviterID: organizerID,
	})
	if err != nil {
		return domain.Collaborator{}, fmt.Errorf("s.repo.CreateCollaborator -> %w", err)
	}

	subject := "Collaboration request for " + event.Name
	body := fmt.Sprintf("You have been invited to co-organize %s on %s.\nLog in to respond.\n", event.Name, event.Date)
	if err := s.notifier.Send(email, subject, body); err != nil {
		zap.L().Warn("collaboration email not delivered",
			zap.Uint("event_id", eventID),
			zap.String("email", email),
			zap.Error(err))
	}

	return created, nil
}

func (s *InvitationService) RespondToCollaboration(ctx context.Context, eventID, userID uint, accepted bool) (domain.Collaborator, error) {
	responded, err := s.repo.RespondCollaboration(ctx, eventID, userID, accepted)
	if err != nil {
		return domain.Collaborator{}, fmt.Errorf("s.repo.RespondCollaboration -> %w", err)
	}

	return responded, nil
}

func (s *InvitationService) ListInvitees(ctx context.Context, eventID uint, requesterID uint) ([]domain.Invitee, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	if event.OrganizerID != requesterID {
		return nil, ErrNotEventOwner
	}

	invitees, err := s.repo.ListInviteesByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListInviteesByEvent -> %w", err)
	}

	return invitees, nil
}

// calendarLink builds a Google Calendar template URL from the event's
// wall-clock date and times. Unparseable events fall back to an all-day
// entry on the stored date string.
func calendarLink(event domain.Event) string {
	start, errStart := time.Parse("2006-01-02 15:04", event.Date+" "+event.StartTime)
	end, errEnd := time.Parse("2006-01-02 15:04", event.Date+" "+event.EndTime)

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", event.Name)
	q.Set("location", event.Location)
	q.Set("details", event.Description)
	if errStart == nil && errEnd == nil {
		q.Set("dates", start.Format("20060102T150405")+"/"+end.Format("20060102T150405"))
	} else if day, err := time.Parse("2006-01-02", event.Date); err == nil {
		q.Set("dates", day.Format("20060102")+"/"+day.AddDate(0, 0, 1).Format("20060102"))
	}

	return "https://calendar.google.com/calendar/render?" + q.Encode()
}
