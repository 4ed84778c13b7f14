package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInviteeNotFound      = errors.New("invitee not found")
	ErrInviteeExists        = errors.New("guest already invited to this event")
	ErrCollaboratorExists   = errors.New("collaborator already invited")
	ErrCollaboratorNotFound = errors.New("collaboration invite not found")
)

type Invitee struct {
	ID uint `gorm:"primaryKey"`

	EventID uint   `gorm:"not null;uniqueIndex:idx_invitees_event_email"`
	Email   string `gorm:"not null;uniqueIndex:idx_invitees_event_email"`
	Name    string

	TicketCode string // empty for private events
	Status     string `gorm:"not null;default:pending"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Collaborator struct {
	ID uint `gorm:"primaryKey"`

	EventID   uint `gorm:"not null;uniqueIndex:idx_collaborators_event_user"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_collaborators_event_user"`
	InviterID uint `gorm:"not null"`

	Accepted    bool `gorm:"not null;default:false"`
	RespondedAt *time.Time

	CreatedAt time.Time `gorm:"not null"`
}

type InvitationDAO struct {
	db *gorm.DB
}

func NewInvitationDAO(db *gorm.DB) *InvitationDAO {
	return &InvitationDAO{
		db: db,
	}
}

// InsertInvitee persists the invitee, its ticket when one was minted,
// and the event's has_invited_guests flag as one unit.
func (d *InvitationDAO) InsertInvitee(ctx context.Context, invitee Invitee, ticket *Ticket) (Invitee, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ticket != nil {
			if err := tx.Create(ticket).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(&invitee).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return ErrInviteeExists
			}

			return err
		}

		return tx.Model(&Event{}).Where("id = ?", invitee.EventID).
			Update("has_invited_guests", true).Error
	})
	if err != nil {
		return Invitee{}, err
	}

	return invitee, nil
}

func (d *InvitationDAO) FindInvitee(ctx context.Context, eventID uint, email string) (Invitee, error) {
	var invitee Invitee

	result := d.db.WithContext(ctx).First(&invitee, "event_id = ? AND email = ?", eventID, email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Invitee{}, ErrInviteeNotFound
		}

		return Invitee{}, result.Error
	}

	return invitee, nil
}

// RespondInvitee applies the one-way pending transition. The bool
// reports whether the invitee had already responded; in that case the
// stored row is returned untouched.
func (d *InvitationDAO) RespondInvitee(ctx context.Context, eventID uint, email string, accepted bool) (Invitee, bool, error) {
	var (
		invitee Invitee
		already bool
	)

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&invitee, "event_id = ? AND email = ?", eventID, email)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrInviteeNotFound
			}

			return result.Error
		}

		if invitee.Status != "pending" {
			already = true

			return nil
		}

		status := "declined"
		if accepted {
			status = "accepted"
		}

		if err := tx.Model(&Invitee{}).Where("id = ?", invitee.ID).
			Update("status", status).Error; err != nil {
			return err
		}
		invitee.Status = status

		return nil
	})
	if err != nil {
		return Invitee{}, false, err
	}

	return invitee, already, nil
}

func (d *InvitationDAO) ListInviteesByEvent(ctx context.Context, eventID uint) ([]Invitee, error) {
	var invitees []Invitee

	result := d.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&invitees)
	if result.Error != nil {
		return nil, result.Error
	}

	return invitees, nil
}

func (d *InvitationDAO) InsertCollaborator(ctx context.Context, c Collaborator) (Collaborator, error) {
	result := d.db.WithContext(ctx).Create(&c)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Collaborator{}, ErrCollaboratorExists
		}

		return Collaborator{}, result.Error
	}

	return c, nil
}

func (d *InvitationDAO) FindCollaborator(ctx context.Context, eventID, userID uint) (Collaborator, error) {
	var c Collaborator

	result := d.db.WithContext(ctx).First(&c, "event_id = ? AND user_id = ?", eventID, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Collaborator{}, ErrCollaboratorNotFound
		}

		return Collaborator{}, result.Error
	}

	return c, nil
}

// RespondCollaboration finalizes a collaboration invite once.
func (d *InvitationDAO) RespondCollaboration(ctx context.Context, eventID, userID uint, accepted bool, respondedAt time.Time) (Collaborator, error) {
	var c Collaborator

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&c, "event_id = ? AND user_id = ?", eventID, userID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrCollaboratorNotFound
			}

			return result.Error
		}

		if c.RespondedAt != nil {
			return ErrAlreadyResponded
		}

		if err := tx.Model(&Collaborator{}).Where("id = ?", c.ID).Updates(map[string]any{
			"accepted":     accepted,
			"responded_at": respondedAt,
		}).Error; err != nil {
			return err
		}

		c.Accepted = accepted
		c.RespondedAt = &respondedAt

		return nil
	})
	if err != nil {
		return Collaborator{}, err
	}

	return c, nil
}

// IsAcceptedCollaborator reports whether the user has accepted a
// collaboration invite on the event.
func (d *InvitationDAO) IsAcceptedCollaborator(ctx context.Context, eventID, userID uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Collaborator{}).
		Where("event_id = ? AND user_id = ? AND accepted = ?", eventID, userID, true).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}
