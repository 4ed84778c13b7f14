package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     SignupRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  SignupRequest{Email: "alice@example.com", Password: "password1"},
		},
		{
			name:    "missing email",
			req:     SignupRequest{Password: "password1"},
			wantErr: true,
		},
		{
			name:    "malformed email",
			req:     SignupRequest{Email: "not-an-email", Password: "password1"},
			wantErr: true,
		},
		{
			name:    "password too short",
			req:     SignupRequest{Email: "alice@example.com", Password: "pw1"},
			wantErr: true,
		},
		{
			name:    "password without a digit",
			req:     SignupRequest{Email: "alice@example.com", Password: "passwords"},
			wantErr: true,
		},
		{
			name:    "password without a letter",
			req:     SignupRequest{Email: "alice@example.com", Password: "12345678"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVendorSignupRequest_Validate(t *testing.T) {
	valid := VendorSignupRequest{
		Name:          "Cater Co",
		Email:         "cater@example.com",
		Password:      "password1",
		BusinessName:  "Cater Co Ltd",
		AccountNumber: "0123456789",
		BankName:      "Test Bank",
		Category:      "catering",
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("non-numeric account number", func(t *testing.T) {
		req := valid
		req.AccountNumber = "01234abcde"
		assert.Error(t, req.Validate())
	})

	t.Run("missing bank name", func(t *testing.T) {
		req := valid
		req.BankName = ""
		assert.Error(t, req.Validate())
	})
}

func TestCreateEventRequest_Validate(t *testing.T) {
	valid := CreateEventRequest{
		Name:      "Launch Party",
		Date:      "2026-10-20",
		StartTime: "18:00",
		EndTime:   "23:00",
		Location:  "Lagos",
		MinGuests: 10,
		MaxGuests: 100,
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("bad date format", func(t *testing.T) {
		req := valid
		req.Date = "20/10/2026"
		assert.Error(t, req.Validate())
	})

	t.Run("bad time format", func(t *testing.T) {
		req := valid
		req.StartTime = "6pm"
		assert.Error(t, req.Validate())
	})

	t.Run("max guests below min", func(t *testing.T) {
		req := valid
		req.MaxGuests = 5
		assert.Error(t, req.Validate())
	})

	t.Run("unknown visibility", func(t *testing.T) {
		req := valid
		req.Visibility = "secret"
		assert.Error(t, req.Validate())
	})
}

func TestRecommendVendorsRequest_Validate(t *testing.T) {
	assert.NoError(t, (&RecommendVendorsRequest{Category: "catering", Budget: 5000, Package: "medium"}).Validate())
	assert.Error(t, (&RecommendVendorsRequest{Category: "catering", Budget: 5000, Package: "jumbo"}).Validate())
	assert.Error(t, (&RecommendVendorsRequest{Budget: 5000, Package: "small"}).Validate())
}

func TestInviteGuestsRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := InviteGuestsRequest{Invitees: []InviteeRequest{{Name: "Ada", Email: "ada@example.com"}}}
		assert.NoError(t, req.Validate())
	})

	t.Run("empty batch", func(t *testing.T) {
		req := InviteGuestsRequest{}
		assert.Error(t, req.Validate())
	})

	t.Run("invitee with a bad email", func(t *testing.T) {
		req := InviteGuestsRequest{Invitees: []InviteeRequest{{Email: "nope"}}}
		assert.Error(t, req.Validate())
	})

	t.Run("raw email string", func(t *testing.T) {
		req := InviteGuestsRequest{Emails: "ada@example.com, grace@example.com\nalan@example.com"}
		assert.NoError(t, req.Validate())

		invitees := req.ToDomain()
		assert.Len(t, invitees, 3)
		assert.Equal(t, "grace@example.com", invitees[1].Email)
	})

	t.Run("raw email string with a bad address", func(t *testing.T) {
		req := InviteGuestsRequest{Emails: "ada@example.com, nope"}
		assert.Error(t, req.Validate())
	})
}

func TestScanTicketRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ScanTicketRequest{TicketCode: "b9f1adbd-52f5-4f7b-9d4e-6f7b0c9f1a2b"}).Validate())
	assert.Error(t, (&ScanTicketRequest{TicketCode: "not-a-uuid"}).Validate())
	assert.Error(t, (&ScanTicketRequest{}).Validate())
}

func TestInitializePaymentRequest_Validate(t *testing.T) {
	assert.NoError(t, (&InitializePaymentRequest{VendorID: 5, Package: "small"}).Validate())
	assert.Error(t, (&InitializePaymentRequest{Package: "small"}).Validate())
	assert.Error(t, (&InitializePaymentRequest{VendorID: 5, Package: "jumbo"}).Validate())
}
