package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/zidepeople/runevents-api/internal/domain"
	"github.com/zidepeople/runevents-api/internal/repository/dao"
)

var (
	ErrVendorEmailExists = dao.ErrVendorEmailExists
	ErrVendorNotFound    = dao.ErrVendorNotFound
)

type VendorRepository struct {
	dao *dao.VendorDAO
}

func NewVendorRepository(dao *dao.VendorDAO) *VendorRepository {
	return &VendorRepository{
		dao: dao,
	}
}

func (r *VendorRepository) daoToDomain(v dao.ServiceProvider) domain.Vendor {
	var tags []string
	if v.Tags != "" {
		tags = strings.Split(v.Tags, ",")
	}

	return domain.Vendor{
		ID:             v.ID,
		Name:           v.Name,
		Email:          v.Email,
		Password:       v.Password,
		BusinessName:   v.BusinessName,
		AccountNumber:  v.AccountNumber,
		BankName:       v.BankName,
		Category:       v.Category,
		PriceSmall:     v.PriceSmall,
		PriceMedium:    v.PriceMedium,
		PriceLarge:     v.PriceLarge,
		Rating:         v.Rating,
		Tags:           tags,
		SubaccountCode: v.SubaccountCode,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func (r *VendorRepository) Create(ctx context.Context, vendor domain.Vendor) (domain.Vendor, error) {
	created, err := r.dao.Insert(ctx, dao.ServiceProvider{
		Name:           vendor.Name,
		Email:          vendor.Email,
		Password:       vendor.Password,
		BusinessName:   vendor.BusinessName,
		AccountNumber:  vendor.AccountNumber,
		BankName:       vendor.BankName,
		Category:       vendor.Category,
		PriceSmall:     vendor.PriceSmall,
		PriceMedium:    vendor.PriceMedium,
		PriceLarge:     vendor.PriceLarge,
		Rating:         vendor.Rating,
		Tags:           strings.Join(vendor.Tags, ","),
		SubaccountCode: vendor.SubaccountCode,
	})
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *VendorRepository) FindByID(ctx context.Context, id uint) (domain.Vendor, error) {
	vendor, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(vendor), nil
}

func (r *VendorRepository) FindByEmail(ctx context.Context, email string) (domain.Vendor, error) {
	vendor, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(vendor), nil
}

func (r *VendorRepository) Patch(ctx context.Context, id uint, patch domain.VendorPatch) (domain.Vendor, error) {
	fields := map[string]any{}
	if patch.BusinessName != nil {
		fields["business_name"] = *patch.BusinessName
	}
	if patch.AccountNumber != nil {
		fields["account_number"] = *patch.AccountNumber
	}
	if patch.BankName != nil {
		fields["bank_name"] = *patch.BankName
	}
	if patch.Tags != nil {
		fields["tags"] = strings.Join(*patch.Tags, ",")
	}
	if patch.PriceSmall != nil {
		fields["price_small"] = *patch.PriceSmall
	}
	if patch.PriceMedium != nil {
		fields["price_medium"] = *patch.PriceMedium
	}
	if patch.PriceLarge != nil {
		fields["price_large"] = *patch.PriceLarge
	}

	updated, err := r.dao.Update(ctx, id, fields)
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *VendorRepository) Recommend(ctx context.Context, category string, budget int, tier domain.PackageTier, tags []string) ([]domain.Vendor, error) {
	rows, err := r.dao.Recommend(ctx, category, budget, string(tier), tags)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Recommend -> %w", err)
	}

	vendors := make([]domain.Vendor, len(rows))
	for i, row := range rows {
		vendors[i] = r.daoToDomain(row)
	}

	return vendors, nil
}
