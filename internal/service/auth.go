package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/zidepeople/runevents-api/internal/domain"
	"github.com/zidepeople/runevents-api/internal/repository"
)

var (
	ErrUserEmailExists   = repository.ErrUserEmailExists
	ErrUserNotFound      = repository.ErrUserNotFound
	ErrVendorEmailExists = repository.ErrVendorEmailExists
	ErrVendorNotFound    = repository.ErrVendorNotFound
	ErrWrongPassword     = errors.New("wrong password")
	ErrEmptyPatch        = errors.New("no fields to update")
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	Patch(ctx context.Context, id uint, patch domain.UserPatch) (domain.User, error)
}

type AuthVendorRepository interface {
	Create(ctx context.Context, vendor domain.Vendor) (domain.Vendor, error)
	FindByEmail(ctx context.Context, email string) (domain.Vendor, error)
	Patch(ctx context.Context, id uint, patch domain.VendorPatch) (domain.Vendor, error)
}

// SubaccountGateway creates the settlement subaccount a vendor is paid
// through. Vendor signup fails when the gateway does.
type SubaccountGateway interface {
	CreateSubaccount(ctx context.Context, businessName, bankName, accountNumber, email string) (string, error)
}

type AuthService struct {
	users   AuthUserRepository
	vendors AuthVendorRepository
	gateway SubaccountGateway
}

func NewAuthService(users AuthUserRepository, vendors AuthVendorRepository, gateway SubaccountGateway) *AuthService {
	return &AuthService{
		users:   users,
		vendors: vendors,
		gateway: gateway,
	}
}

func (s *AuthService) Signup(ctx context.Context, user domain.User) (domain.User, error) {
	hash, err := hashPassword(user.Password)
	if err != nil {
		return domain.User{}, err
	}
	user.Password = hash
	user.Role = "organizer"

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.users.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.users.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	return user, nil
}

// SignupVendor registers a service provider. The gateway subaccount is
// created first so a vendor row never exists without one.
func (s *AuthService) SignupVendor(ctx context.Context, vendor domain.Vendor) (domain.Vendor, error) {
	if _, err := s.vendors.FindByEmail(ctx, vendor.Email); err == nil {
		return domain.Vendor{}, ErrVendorEmailExists
	} else if !errors.Is(err, repository.ErrVendorNotFound) {
		return domain.Vendor{}, fmt.Errorf("s.vendors.FindByEmail -> %w", err)
	}

	subaccountCode, err := s.gateway.CreateSubaccount(ctx, vendor.BusinessName, vendor.BankName, vendor.AccountNumber, vendor.Email)
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("s.gateway.CreateSubaccount -> %w", err)
	}
	vendor.SubaccountCode = subaccountCode

	hash, err := hashPassword(vendor.Password)
	if err != nil {
		return domain.Vendor{}, err
	}
	vendor.Password = hash

	created, err := s.vendors.Create(ctx, vendor)
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("s.vendors.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) LoginVendor(ctx context.Context, email, password string) (domain.Vendor, error) {
	vendor, err := s.vendors.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return domain.Vendor{}, ErrVendorNotFound
		}

		return domain.Vendor{}, fmt.Errorf("s.vendors.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(vendor.Password), []byte(password)); err != nil {
		return domain.Vendor{}, ErrWrongPassword
	}

	return vendor, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, id uint, patch domain.UserPatch) (domain.User, error) {
	if patch.IsEmpty() {
		return domain.User{}, ErrEmptyPatch
	}

	if patch.Password != nil {
		hash, err := hashPassword(*patch.Password)
		if err != nil {
			return domain.User{}, err
		}
		patch.Password = &hash
	}

	updated, err := s.users.Patch(ctx, id, patch)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.users.Patch -> %w", err)
	}

	return updated, nil
}

func (s *AuthService) UpdateVendorProfile(ctx context.Context, id uint, patch domain.VendorPatch) (domain.Vendor, error) {
	if patch.IsEmpty() {
		return domain.Vendor{}, ErrEmptyPatch
	}

	updated, err := s.vendors.Patch(ctx, id, patch)
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("s.vendors.Patch -> %w", err)
	}

	return updated, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	return string(hash), nil
}
