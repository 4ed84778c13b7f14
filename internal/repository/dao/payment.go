package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPaymentNotFound = errors.New("payment record not found")

type Payment struct {
	ID uint `gorm:"primaryKey"`

	SenderID   uint `gorm:"not null;index"`
	ReceiverID uint `gorm:"not null;index"`
	EventID    *uint

	Amount    int    `gorm:"not null"`
	Reference string `gorm:"unique;not null"`
	Status    string `gorm:"not null;default:pending"`
	PaidAt    *time.Time

	Package        string `gorm:"column:package_selected;not null"`
	SubaccountCode string `gorm:"column:paystack_subaccount_code;not null"`

	CreatedAt time.Time `gorm:"not null"`
}

// PaymentHistoryRow joins a payment with event/party display fields.
type PaymentHistoryRow struct {
	PaymentID  uint
	EventID    *uint
	EventName  string
	VendorName string
	BuyerEmail string
	Amount     int
	Reference  string
	Status     string
	PaidAt     *time.Time
	Package    string
}

type PaymentDAO struct {
	db *gorm.DB
}

func NewPaymentDAO(db *gorm.DB) *PaymentDAO {
	return &PaymentDAO{
		db: db,
	}
}

func (d *PaymentDAO) Insert(ctx context.Context, payment Payment) (Payment, error) {
	result := d.db.WithContext(ctx).Create(&payment)
	if result.Error != nil {
		return Payment{}, result.Error
	}

	return payment, nil
}

func (d *PaymentDAO) FindByReferenceAndSender(ctx context.Context, reference string, senderID uint) (Payment, error) {
	var payment Payment

	result := d.db.WithContext(ctx).
		First(&payment, "reference = ? AND sender_id = ?", reference, senderID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Payment{}, ErrPaymentNotFound
		}

		return Payment{}, result.Error
	}

	return payment, nil
}

// MarkSuccess transitions pending -> success once. The bool reports
// whether the row was already success; paid_at is untouched in that case.
func (d *PaymentDAO) MarkSuccess(ctx context.Context, reference string, senderID uint, paidAt time.Time) (Payment, bool, error) {
	var (
		payment Payment
		already bool
	)

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&payment, "reference = ? AND sender_id = ?", reference, senderID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}

			return result.Error
		}

		if payment.Status == "success" {
			already = true

			return nil
		}

		if err := tx.Model(&Payment{}).Where("id = ?", payment.ID).Updates(map[string]any{
			"status":  "success",
			"paid_at": paidAt,
		}).Error; err != nil {
			return err
		}

		payment.Status = "success"
		payment.PaidAt = &paidAt

		return nil
	})
	if err != nil {
		return Payment{}, false, err
	}

	return payment, already, nil
}

func (d *PaymentDAO) HistoryBySender(ctx context.Context, senderID uint) ([]PaymentHistoryRow, error) {
	var rows []PaymentHistoryRow

	result := d.db.WithContext(ctx).
		Table("payments AS p").
		Select("p.id AS payment_id, p.event_id, e.name AS event_name, sp.name AS vendor_name, p.amount, p.reference, p.status, p.paid_at, p.package_selected AS package").
		Joins("LEFT JOIN events e ON e.id = p.event_id").
		Joins("LEFT JOIN service_providers sp ON sp.id = p.receiver_id").
		Where("p.sender_id = ?", senderID).
		Order("p.paid_at DESC NULLS LAST, p.created_at DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *PaymentDAO) HistoryByReceiver(ctx context.Context, vendorID uint) ([]PaymentHistoryRow, error) {
	var rows []PaymentHistoryRow

	result := d.db.WithContext(ctx).
		Table("payments AS p").
		Select("p.id AS payment_id, p.event_id, e.name AS event_name, u.email AS buyer_email, p.amount, p.reference, p.status, p.paid_at, p.package_selected AS package").
		Joins("LEFT JOIN events e ON e.id = p.event_id").
		Joins("LEFT JOIN users u ON u.id = p.sender_id").
		Where("p.receiver_id = ?", vendorID).
		Order("p.paid_at DESC NULLS LAST, p.created_at DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
