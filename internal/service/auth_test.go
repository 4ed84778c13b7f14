package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/zidepeople/runevents-api/internal/domain"
)

func TestAuthService_Signup(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, newFakeVendorRepo(), &fakeGateway{})

	user, err := svc.Signup(context.Background(), domain.User{
		Email:    "alice@example.com",
		Password: "password1",
	})
	require.NoError(t, err)

	assert.Equal(t, "organizer", user.Role)
	assert.NotEqual(t, "password1", users.lastCreate.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users.lastCreate.Password), []byte("password1")))
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users := newFakeUserRepo()
	users.add(domain.User{ID: 1, Email: "alice@example.com", Password: string(hash)})
	svc := NewAuthService(users, newFakeVendorRepo(), &fakeGateway{})

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(context.Background(), "alice@example.com", "password1")
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "alice@example.com", "nope12345")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "bob@example.com", "password1")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestAuthService_SignupVendor(t *testing.T) {
	t.Run("subaccount is created before the vendor is persisted", func(t *testing.T) {
		vendors := newFakeVendorRepo()
		gateway := &fakeGateway{subaccountCode: "ACCT_123"}
		svc := NewAuthService(newFakeUserRepo(), vendors, gateway)

		vendor, err := svc.SignupVendor(context.Background(), domain.Vendor{
			Name:          "Cater Co",
			Email:         "cater@example.com",
			Password:      "password1",
			BusinessName:  "Cater Co Ltd",
			AccountNumber: "0123456789",
			BankName:      "Test Bank",
		})
		require.NoError(t, err)

		assert.Equal(t, "ACCT_123", vendors.lastCreate.SubaccountCode)
		assert.NotZero(t, vendor.ID)
	})

	t.Run("gateway failure leaves no vendor row", func(t *testing.T) {
		vendors := newFakeVendorRepo()
		gateway := &fakeGateway{subaccountErr: errors.New("gateway down")}
		svc := NewAuthService(newFakeUserRepo(), vendors, gateway)

		_, err := svc.SignupVendor(context.Background(), domain.Vendor{
			Email:    "cater@example.com",
			Password: "password1",
		})
		require.Error(t, err)
		assert.Zero(t, vendors.created)
	})

	t.Run("duplicate email is refused before the gateway is called", func(t *testing.T) {
		vendors := newFakeVendorRepo()
		vendors.add(domain.Vendor{ID: 1, Email: "cater@example.com"})
		svc := NewAuthService(newFakeUserRepo(), vendors, &fakeGateway{subaccountCode: "ACCT_123"})

		_, err := svc.SignupVendor(context.Background(), domain.Vendor{
			Email:    "cater@example.com",
			Password: "password1",
		})
		assert.ErrorIs(t, err, ErrVendorEmailExists)
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	users := newFakeUserRepo()
	users.add(domain.User{ID: 1, Email: "alice@example.com", Password: "old-hash"})
	svc := NewAuthService(users, newFakeVendorRepo(), &fakeGateway{})

	t.Run("empty patch is refused", func(t *testing.T) {
		_, err := svc.UpdateProfile(context.Background(), 1, domain.UserPatch{})
		assert.ErrorIs(t, err, ErrEmptyPatch)
	})

	t.Run("new password is hashed", func(t *testing.T) {
		password := "newpassword1"
		_, err := svc.UpdateProfile(context.Background(), 1, domain.UserPatch{Password: &password})
		require.NoError(t, err)

		stored := users.users[1].Password
		assert.NotEqual(t, password, stored)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)))
	})
}
