package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrTicketNotFound = errors.New("ticket not found")

type Ticket struct {
	ID uint `gorm:"primaryKey"`

	Code    string `gorm:"column:ticket_code;unique;not null"`
	EventID uint   `gorm:"not null;index"`
	Email   string `gorm:"not null"`
	UserID  *uint

	IsScanned bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
}

type TicketLog struct {
	ID uint `gorm:"primaryKey"`

	TicketID  uint `gorm:"not null"`
	EventID   uint `gorm:"not null;index"`
	ScannedBy uint `gorm:"column:scanned_by_user_id;not null"`

	ScannedAt time.Time `gorm:"not null;autoCreateTime"`
}

// TicketWithEvent carries the event fields a scan decision needs.
type TicketWithEvent struct {
	Ticket      Ticket
	EventName   string
	OrganizerID uint
}

type TicketDAO struct {
	db *gorm.DB
}

func NewTicketDAO(db *gorm.DB) *TicketDAO {
	return &TicketDAO{
		db: db,
	}
}

func (d *TicketDAO) Insert(ctx context.Context, ticket Ticket) (Ticket, error) {
	result := d.db.WithContext(ctx).Create(&ticket)
	if result.Error != nil {
		return Ticket{}, result.Error
	}

	return ticket, nil
}

func (d *TicketDAO) FindByCode(ctx context.Context, code string) (TicketWithEvent, error) {
	var ticket Ticket

	result := d.db.WithContext(ctx).First(&ticket, "ticket_code = ?", code)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TicketWithEvent{}, ErrTicketNotFound
		}

		return TicketWithEvent{}, result.Error
	}

	var event Event
	if err := d.db.WithContext(ctx).First(&event, ticket.EventID).Error; err != nil {
		return TicketWithEvent{}, err
	}

	return TicketWithEvent{
		Ticket:      ticket,
		EventName:   event.Name,
		OrganizerID: event.OrganizerID,
	}, nil
}

// Scan flips is_scanned with a compare-and-set so that concurrent scans
// of the same code admit exactly one. The bool reports whether this call
// won; the log row is written in the same transaction.
func (d *TicketDAO) Scan(ctx context.Context, ticketID, eventID, scannedBy uint) (bool, error) {
	var scanned bool

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Ticket{}).
			Where("id = ? AND is_scanned = ?", ticketID, false).
			Update("is_scanned", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil // lost the race or already scanned
		}

		scanned = true

		log := TicketLog{
			TicketID:  ticketID,
			EventID:   eventID,
			ScannedBy: scannedBy,
			ScannedAt: time.Now(),
		}

		return tx.Create(&log).Error
	})
	if err != nil {
		return false, err
	}

	return scanned, nil
}

func (d *TicketDAO) LogsByEvent(ctx context.Context, eventID uint) ([]TicketLog, error) {
	var logs []TicketLog

	result := d.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("scanned_at DESC").
		Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}

	return logs, nil
}
