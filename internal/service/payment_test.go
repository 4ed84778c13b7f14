package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zidepeople/runevents-api/internal/domain"
	"github.com/zidepeople/runevents-api/internal/paystack"
	"github.com/zidepeople/runevents-api/internal/repository"
)

type fakePaymentRepo struct {
	payments map[string]domain.Payment
	created  int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		payments: map[string]domain.Payment{},
	}
}

func (f *fakePaymentRepo) Create(_ context.Context, payment domain.Payment) (domain.Payment, error) {
	f.created++
	payment.ID = uint(f.created)
	f.payments[payment.Reference] = payment

	return payment, nil
}

func (f *fakePaymentRepo) FindByReferenceAndSender(_ context.Context, reference string, senderID uint) (domain.Payment, error) {
	payment, ok := f.payments[reference]
	if !ok || payment.SenderID != senderID {
		return domain.Payment{}, repository.ErrPaymentNotFound
	}

	return payment, nil
}

func (f *fakePaymentRepo) MarkSuccess(_ context.Context, reference string, senderID uint, paidAt time.Time) (domain.Payment, bool, error) {
	payment, ok := f.payments[reference]
	if !ok || payment.SenderID != senderID {
		return domain.Payment{}, false, repository.ErrPaymentNotFound
	}
	if payment.Status == domain.PaymentSuccess {
		return payment, true, nil
	}
	payment.Status = domain.PaymentSuccess
	payment.PaidAt = &paidAt
	f.payments[reference] = payment

	return payment, false, nil
}

func (f *fakePaymentRepo) HistoryBySender(_ context.Context, senderID uint) ([]domain.PaymentRecord, error) {
	var out []domain.PaymentRecord
	for _, payment := range f.payments {
		if payment.SenderID == senderID {
			out = append(out, domain.PaymentRecord{Reference: payment.Reference, Status: payment.Status})
		}
	}

	return out, nil
}

func (f *fakePaymentRepo) HistoryByReceiver(_ context.Context, vendorID uint) ([]domain.PaymentRecord, error) {
	var out []domain.PaymentRecord
	for _, payment := range f.payments {
		if payment.ReceiverID == vendorID {
			out = append(out, domain.PaymentRecord{Reference: payment.Reference, Status: payment.Status})
		}
	}

	return out, nil
}

func newPaymentFixture(t *testing.T) (*PaymentService, *fakePaymentRepo, *fakeGateway) {
	t.Helper()

	users := newFakeUserRepo()
	users.add(domain.User{ID: 10, Email: "owner@example.com"})

	price := 2500
	vendors := newFakeVendorRepo()
	vendors.add(domain.Vendor{
		ID:             5,
		Email:          "cater@example.com",
		PriceMedium:    &price,
		SubaccountCode: "ACCT_123",
	})
	vendors.add(domain.Vendor{ID: 6, Email: "new@example.com", PriceSmall: &price})

	events := newFakeEventRepo()
	events.events[1] = domain.Event{ID: 1, OrganizerID: 10}

	repo := newFakePaymentRepo()
	gateway := &fakeGateway{}

	return NewPaymentService(repo, users, vendors, events, gateway), repo, gateway
}

func TestPaymentService_InitializePayment(t *testing.T) {
	eventID := uint(1)

	t.Run("records a pending payment and returns the checkout URL", func(t *testing.T) {
		svc, repo, gateway := newPaymentFixture(t)

		initialized, err := svc.InitializePayment(context.Background(), 10, 5, domain.TierMedium, &eventID)
		require.NoError(t, err)
		assert.Contains(t, initialized.AuthorizationURL, initialized.Reference)

		payment := repo.payments[initialized.Reference]
		assert.Equal(t, domain.PaymentPending, payment.Status)
		assert.Equal(t, 2500, payment.Amount)
		assert.Equal(t, "ACCT_123", payment.SubaccountCode)

		// The gateway is charged in the minor currency unit.
		require.Len(t, gateway.initialized, 1)
		assert.Equal(t, 250000, gateway.initialized[0])
	})

	t.Run("tier without a price", func(t *testing.T) {
		svc, _, _ := newPaymentFixture(t)

		_, err := svc.InitializePayment(context.Background(), 10, 5, domain.TierLarge, nil)
		assert.ErrorIs(t, err, ErrTierUnavailable)
	})

	t.Run("vendor without a subaccount", func(t *testing.T) {
		svc, _, _ := newPaymentFixture(t)

		_, err := svc.InitializePayment(context.Background(), 10, 6, domain.TierSmall, nil)
		assert.ErrorIs(t, err, ErrNoSubaccount)
	})

	t.Run("invalid tier", func(t *testing.T) {
		svc, _, _ := newPaymentFixture(t)

		_, err := svc.InitializePayment(context.Background(), 10, 5, "jumbo", nil)
		assert.ErrorIs(t, err, ErrInvalidTier)
	})

	t.Run("unknown event", func(t *testing.T) {
		svc, _, _ := newPaymentFixture(t)
		unknown := uint(99)

		_, err := svc.InitializePayment(context.Background(), 10, 5, domain.TierMedium, &unknown)
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("gateway failure persists nothing", func(t *testing.T) {
		svc, repo, gateway := newPaymentFixture(t)
		gateway.initializeErr = paystack.ErrGatewayFailure

		_, err := svc.InitializePayment(context.Background(), 10, 5, domain.TierMedium, nil)
		assert.ErrorIs(t, err, ErrGatewayFailure)
		assert.Zero(t, repo.created)
	})
}

func TestPaymentService_VerifyPayment(t *testing.T) {
	initialize := func(t *testing.T, svc *PaymentService) string {
		t.Helper()
		initialized, err := svc.InitializePayment(context.Background(), 10, 5, domain.TierMedium, nil)
		require.NoError(t, err)

		return initialized.Reference
	}

	t.Run("successful verification settles the payment once", func(t *testing.T) {
		svc, _, gateway := newPaymentFixture(t)
		reference := initialize(t, svc)
		gateway.verifyResult = paystack.VerifyResult{Status: "success", Amount: 250000}

		payment, err := svc.VerifyPayment(context.Background(), reference, 10)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentSuccess, payment.Status)
		require.NotNil(t, payment.PaidAt)
		paidAt := *payment.PaidAt

		// A second verify returns the stored record without asking the gateway again.
		again, err := svc.VerifyPayment(context.Background(), reference, 10)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentSuccess, again.Status)
		assert.Equal(t, paidAt, *again.PaidAt)
		assert.Equal(t, 1, gateway.verifyCalls)
	})

	t.Run("unsettled payment stays pending", func(t *testing.T) {
		svc, repo, gateway := newPaymentFixture(t)
		reference := initialize(t, svc)
		gateway.verifyResult = paystack.VerifyResult{Status: "abandoned"}

		_, err := svc.VerifyPayment(context.Background(), reference, 10)
		assert.ErrorIs(t, err, ErrPaymentIncomplete)
		assert.Equal(t, domain.PaymentPending, repo.payments[reference].Status)
	})

	t.Run("another sender's reference is not found", func(t *testing.T) {
		svc, _, _ := newPaymentFixture(t)
		reference := initialize(t, svc)

		_, err := svc.VerifyPayment(context.Background(), reference, 42)
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})

	t.Run("gateway failure surfaces without settling", func(t *testing.T) {
		svc, repo, gateway := newPaymentFixture(t)
		reference := initialize(t, svc)
		gateway.verifyErr = paystack.ErrGatewayFailure

		_, err := svc.VerifyPayment(context.Background(), reference, 10)
		assert.ErrorIs(t, err, ErrGatewayFailure)
		assert.Equal(t, domain.PaymentPending, repo.payments[reference].Status)
	})
}

func TestPaymentService_Histories(t *testing.T) {
	svc, repo, _ := newPaymentFixture(t)
	repo.payments["ref-1"] = domain.Payment{SenderID: 10, ReceiverID: 5, Reference: "ref-1", Status: domain.PaymentSuccess}
	repo.payments["ref-2"] = domain.Payment{SenderID: 11, ReceiverID: 5, Reference: "ref-2", Status: domain.PaymentPending}

	sent, err := svc.GetHistory(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, sent, 1)

	received, err := svc.GetVendorHistory(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, received, 2)
}
