package dao

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrParticipationExists   = errors.New("vendor already requested for this event")
	ErrParticipationNotFound = errors.New("participation request not found")
	ErrAlreadyResponded      = errors.New("request already responded to")
)

// Participation has a composite (event, vendor) key, so a duplicate
// request fails on insert.
type Participation struct {
	EventID           uint `gorm:"primaryKey;autoIncrement:false"`
	ServiceProviderID uint `gorm:"primaryKey;autoIncrement:false"`

	Service string `gorm:"column:service_to_be_rendered;not null"`
	Price   int    `gorm:"not null"`
	Status  string `gorm:"not null;default:pending"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Participation) TableName() string {
	return "event_service_provider_participation"
}

// ParticipationRow joins a participation with its vendor's display name.
type ParticipationRow struct {
	ServiceProviderID uint
	VendorName        string
	Service           string
	Price             int
	Status            string
}

// PendingRequestRow joins an unanswered participation with its event.
type PendingRequestRow struct {
	EventID   uint
	EventName string
	EventDate string
	Location  string
	Service   string
	Price     int
}

type ParticipationDAO struct {
	db *gorm.DB
}

func NewParticipationDAO(db *gorm.DB) *ParticipationDAO {
	return &ParticipationDAO{
		db: db,
	}
}

func (d *ParticipationDAO) Insert(ctx context.Context, p Participation) (Participation, error) {
	result := d.db.WithContext(ctx).Create(&p)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Participation{}, ErrParticipationExists
		}

		return Participation{}, result.Error
	}

	return p, nil
}

func (d *ParticipationDAO) FindByEventAndVendor(ctx context.Context, eventID, vendorID uint) (Participation, error) {
	var p Participation

	result := d.db.WithContext(ctx).
		First(&p, "event_id = ? AND service_provider_id = ?", eventID, vendorID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participation{}, ErrParticipationNotFound
		}

		return Participation{}, result.Error
	}

	return p, nil
}

// Respond finalizes a pending request. On acceptance the budget entry
// append, the has_accepted_vendors flag and the status change commit as
// one unit; a second response fails with ErrAlreadyResponded.
func (d *ParticipationDAO) Respond(ctx context.Context, eventID, vendorID uint, accepted bool) (Participation, error) {
	var p Participation

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&p, "event_id = ? AND service_provider_id = ?", eventID, vendorID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrParticipationNotFound
			}

			return result.Error
		}

		if p.Status != "pending" {
			return ErrAlreadyResponded
		}

		status := "declined"
		if accepted {
			status = "accepted"
		}

		if err := tx.Model(&Participation{}).
			Where("event_id = ? AND service_provider_id = ?", eventID, vendorID).
			Update("status", status).Error; err != nil {
			return err
		}
		p.Status = status

		if !accepted {
			return nil
		}

		var vendor ServiceProvider
		if err := tx.First(&vendor, vendorID).Error; err != nil {
			return err
		}

		var event Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&event, eventID).Error; err != nil {
			return err
		}

		var breakdown []map[string]any
		if len(event.BudgetBreakdown) > 0 {
			if err := json.Unmarshal(event.BudgetBreakdown, &breakdown); err != nil {
				return err
			}
		}
		breakdown = append(breakdown, map[string]any{
			"recipient": vendor.Name,
			"amount":    p.Price,
			"category":  p.Service,
		})

		raw, err := json.Marshal(breakdown)
		if err != nil {
			return err
		}

		return tx.Model(&Event{}).Where("id = ?", eventID).Updates(map[string]any{
			"budget_breakdown":     raw,
			"has_accepted_vendors": true,
		}).Error
	})
	if err != nil {
		return Participation{}, err
	}

	return p, nil
}

func (d *ParticipationDAO) ListByEvent(ctx context.Context, eventID uint) ([]ParticipationRow, error) {
	var rows []ParticipationRow

	result := d.db.WithContext(ctx).
		Table("event_service_provider_participation AS esp").
		Select("esp.service_provider_id, sp.name AS vendor_name, esp.service_to_be_rendered AS service, esp.price, esp.status").
		Joins("JOIN service_providers sp ON sp.id = esp.service_provider_id").
		Where("esp.event_id = ?", eventID).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *ParticipationDAO) ListPendingByVendor(ctx context.Context, vendorID uint) ([]PendingRequestRow, error) {
	var rows []PendingRequestRow

	result := d.db.WithContext(ctx).
		Table("event_service_provider_participation AS esp").
		Select("esp.event_id, e.name AS event_name, e.date AS event_date, e.location, esp.service_to_be_rendered AS service, esp.price").
		Joins("JOIN events e ON e.id = esp.event_id").
		Where("esp.service_provider_id = ? AND esp.status = ?", vendorID, "pending").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
