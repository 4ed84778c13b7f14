package service

import (
	"context"
	"fmt"

	"github.com/zidepeople/runevents-api/internal/domain"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type VendorRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Vendor, error)
}

type UserService struct {
	users   UserRepository
	vendors VendorRepository
}

func NewUserService(users UserRepository, vendors VendorRepository) *UserService {
	return &UserService{
		users:   users,
		vendors: vendors,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.users.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) GetVendor(ctx context.Context, id uint) (domain.Vendor, error) {
	vendor, err := s.vendors.FindByID(ctx, id)
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("s.vendors.FindByID -> %w", err)
	}

	return vendor, nil
}
