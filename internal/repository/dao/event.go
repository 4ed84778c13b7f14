package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrEventHasReferences = errors.New("event still has tickets or payments")
)

type Event struct {
	ID uint `gorm:"primaryKey"`

	OrganizerID uint   `gorm:"not null;index"`
	Name        string `gorm:"not null"`

	// Naive local date/times, no timezone attached.
	Date      string `gorm:"not null"`
	StartTime string
	EndTime   string
	Location  string `gorm:"not null"`

	MinGuests   int
	MaxGuests   int
	Description string

	TotalBudget int
	TicketPrice int
	Visibility  string `gorm:"not null;default:private"`

	HasInvitedGuests   bool `gorm:"not null;default:false"`
	HasAcceptedVendors bool `gorm:"not null;default:false"`

	BudgetBreakdown datatypes.JSON

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindAllPublic(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).Where("visibility = ?", "public").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindByOrganizer(ctx context.Context, organizerID uint) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).Where("organizer_id = ?", organizerID).Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) Update(ctx context.Context, id uint, fields map[string]any) (Event, error) {
	result := d.db.WithContext(ctx).Model(&Event{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrEventNotFound
	}

	return d.FindByID(ctx, id)
}

// Delete removes the event and its cascade-scoped participation and
// invitee rows. Events referenced by tickets or payments are financial
// records and are refused.
func (d *EventDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event Event
		if err := tx.First(&event, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}

			return err
		}

		var tickets int64
		if err := tx.Model(&Ticket{}).Where("event_id = ?", id).Count(&tickets).Error; err != nil {
			return err
		}

		var payments int64
		if err := tx.Model(&Payment{}).Where("event_id = ?", id).Count(&payments).Error; err != nil {
			return err
		}

		if tickets > 0 || payments > 0 {
			return ErrEventHasReferences
		}

		if err := tx.Where("event_id = ?", id).Delete(&Participation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&Invitee{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&Collaborator{}).Error; err != nil {
			return err
		}

		return tx.Delete(&Event{}, id).Error
	})
}
