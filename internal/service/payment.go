package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zidepeople/runevents-api/internal/domain"
	"github.com/zidepeople/runevents-api/internal/paystack"
	"github.com/zidepeople/runevents-api/internal/repository"
)

var (
	ErrPaymentNotFound   = repository.ErrPaymentNotFound
	ErrGatewayFailure    = paystack.ErrGatewayFailure
	ErrPaymentIncomplete = errors.New("payment not completed")
	ErrNoSubaccount      = errors.New("vendor has no payable subaccount")
	ErrTierUnavailable   = errors.New("package tier not offered by this vendor")
)

type PaymentRepository interface {
	Create(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	FindByReferenceAndSender(ctx context.Context, reference string, senderID uint) (domain.Payment, error)
	MarkSuccess(ctx context.Context, reference string, senderID uint, paidAt time.Time) (domain.Payment, bool, error)
	HistoryBySender(ctx context.Context, senderID uint) ([]domain.PaymentRecord, error)
	HistoryByReceiver(ctx context.Context, vendorID uint) ([]domain.PaymentRecord, error)
}

// PaymentGateway initializes checkouts and reports their outcome. The
// gateway's verdict is authoritative over local state.
type PaymentGateway interface {
	Initialize(ctx context.Context, email string, amount int, reference, subaccountCode string) (string, error)
	Verify(ctx context.Context, reference string) (paystack.VerifyResult, error)
}

// InitializedPayment is what the payer needs to complete checkout.
type InitializedPayment struct {
	AuthorizationURL string `json:"authorization_url"`
	Reference        string `json:"reference"`
}

type PaymentService struct {
	repo    PaymentRepository
	users   UserRepository
	vendors VendorFinder
	events  EventFinder
	gateway PaymentGateway
}

func NewPaymentService(repo PaymentRepository, users UserRepository, vendors VendorFinder, events EventFinder, gateway PaymentGateway) *PaymentService {
	return &PaymentService{
		repo:    repo,
		users:   users,
		vendors: vendors,
		events:  events,
		gateway: gateway,
	}
}

// InitializePayment prices the selected package, opens a gateway
// checkout routed to the vendor's subaccount, and records a pending
// payment before the authorization URL is handed back.
func (s *PaymentService) InitializePayment(ctx context.Context, payerID, vendorID uint, tier domain.PackageTier, eventID *uint) (InitializedPayment, error) {
	if !tier.IsValid() {
		return InitializedPayment{}, ErrInvalidTier
	}

	payer, err := s.users.FindByID(ctx, payerID)
	if err != nil {
		return InitializedPayment{}, fmt.Errorf("s.users.FindByID -> %w", err)
	}

	vendor, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		return InitializedPayment{}, fmt.Errorf("s.vendors.FindByID -> %w", err)
	}

	if eventID != nil {
		if _, err := s.events.FindByID(ctx, *eventID); err != nil {
			return InitializedPayment{}, fmt.Errorf("s.events.FindByID -> %w", err)
		}
	}

	if vendor.SubaccountCode == "" {
		return InitializedPayment{}, ErrNoSubaccount
	}

	amount, ok := vendor.TierPrice(tier)
	if !ok {
		return InitializedPayment{}, ErrTierUnavailable
	}

	reference := uuid.NewString()

	// Gateway amounts are in the minor currency unit.
	authorizationURL, err := s.gateway.Initialize(ctx, payer.Email, amount*100, reference, vendor.SubaccountCode)
	if err != nil {
		return InitializedPayment{}, fmt.Errorf("s.gateway.Initialize -> %w", err)
	}

	if _, err := s.repo.Create(ctx, domain.Payment{
		SenderID:       payerID,
		ReceiverID:     vendorID,
		EventID:        eventID,
		Amount:         amount,
		Reference:      reference,
		Status:         domain.PaymentPending,
		Package:        tier,
		SubaccountCode: vendor.SubaccountCode,
	}); err != nil {
		return InitializedPayment{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return InitializedPayment{AuthorizationURL: authorizationURL, Reference: reference}, nil
}

// VerifyPayment asks the gateway for the transaction outcome and
// promotes the local record to success exactly once. Re-verifying a
// settled payment returns the stored record unchanged.
func (s *PaymentService) VerifyPayment(ctx context.Context, reference string, payerID uint) (domain.Payment, error) {
	payment, err := s.repo.FindByReferenceAndSender(ctx, reference, payerID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.repo.FindByReferenceAndSender -> %w", err)
	}

	if payment.Status == domain.PaymentSuccess {
		return payment, nil
	}

	result, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.gateway.Verify -> %w", err)
	}

	if result.Status != "success" {
		return domain.Payment{}, ErrPaymentIncomplete
	}

	settled, _, err := s.repo.MarkSuccess(ctx, reference, payerID, time.Now())
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.repo.MarkSuccess -> %w", err)
	}

	return settled, nil
}

func (s *PaymentService) GetHistory(ctx context.Context, payerID uint) ([]domain.PaymentRecord, error) {
	records, err := s.repo.HistoryBySender(ctx, payerID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.HistoryBySender -> %w", err)
	}

	return records, nil
}

func (s *PaymentService) GetVendorHistory(ctx context.Context, vendorID uint) ([]domain.PaymentRecord, error) {
	records, err := s.repo.HistoryByReceiver(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.HistoryByReceiver -> %w", err)
	}

	return records, nil
}
