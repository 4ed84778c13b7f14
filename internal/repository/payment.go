package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/zidepeople/runevents-api/internal/domain"
	"github.com/zidepeople/runevents-api/internal/repository/dao"
)

var ErrPaymentNotFound = dao.ErrPaymentNotFound

type PaymentRepository struct {
	dao *dao.PaymentDAO
}

func NewPaymentRepository(dao *dao.PaymentDAO) *PaymentRepository {
	return &PaymentRepository{
		dao: dao,
	}
}

func (r *PaymentRepository) daoToDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		ID:             p.ID,
		SenderID:       p.SenderID,
		ReceiverID:     p.ReceiverID,
		EventID:        p.EventID,
		Amount:         p.Amount,
		Reference:      p.Reference,
		Status:         domain.PaymentStatus(p.Status),
		PaidAt:         p.PaidAt,
		Package:        domain.PackageTier(p.Package),
		SubaccountCode: p.SubaccountCode,
		CreatedAt:      p.CreatedAt,
	}
}

func (r *PaymentRepository) rowToRecord(row dao.PaymentHistoryRow) domain.PaymentRecord {
	return domain.PaymentRecord{
		PaymentID:  row.PaymentID,
		EventID:    row.EventID,
		EventName:  row.EventName,
		VendorName: row.VendorName,
		BuyerEmail: row.BuyerEmail,
		Amount:     row.Amount,
		Reference:  row.Reference,
		Status:     domain.PaymentStatus(row.Status),
		PaidAt:     row.PaidAt,
		Package:    domain.PackageTier(row.Package),
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	created, err := r.dao.Insert(ctx, dao.Payment{
		SenderID:       payment.SenderID,
		ReceiverID:     payment.ReceiverID,
		EventID:        payment.EventID,
		Amount:         payment.Amount,
		Reference:      payment.Reference,
		Status:         string(domain.PaymentPending),
		Package:        string(payment.Package),
		SubaccountCode: payment.SubaccountCode,
	})
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PaymentRepository) FindByReferenceAndSender(ctx context.Context, reference string, senderID uint) (domain.Payment, error) {
	payment, err := r.dao.FindByReferenceAndSender(ctx, reference, senderID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.FindByReferenceAndSender -> %w", err)
	}

	return r.daoToDomain(payment), nil
}

// MarkSuccess is idempotent: the bool reports whether the payment had
// already been verified.
func (r *PaymentRepository) MarkSuccess(ctx context.Context, reference string, senderID uint, paidAt time.Time) (domain.Payment, bool, error) {
	payment, already, err := r.dao.MarkSuccess(ctx, reference, senderID, paidAt)
	if err != nil {
		return domain.Payment{}, false, fmt.Errorf("r.dao.MarkSuccess -> %w", err)
	}

	return r.daoToDomain(payment), already, nil
}

func (r *PaymentRepository) HistoryBySender(ctx context.Context, senderID uint) ([]domain.PaymentRecord, error) {
	rows, err := r.dao.HistoryBySender(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.HistoryBySender -> %w", err)
	}

	records := make([]domain.PaymentRecord, len(rows))
	for i, row := range rows {
		records[i] = r.rowToRecord(row)
	}

	return records, nil
}

func (r *PaymentRepository) HistoryByReceiver(ctx context.Context, vendorID uint) ([]domain.PaymentRecord, error) {
	rows, err := r.dao.HistoryByReceiver(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.HistoryByReceiver -> %w", err)
	}

	records := make([]domain.PaymentRecord, len(rows))
	for i, row := range rows {
		records[i] = r.rowToRecord(row)
	}

	return records, nil
}
