package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrVendorEmailExists = errors.New("vendor already exists")
	ErrVendorNotFound    = errors.New("vendor not found")
)

type ServiceProvider struct {
	ID uint `gorm:"primaryKey"`

	Name     string `gorm:"not null"`
	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`

	BusinessName  string `gorm:"not null"`
	AccountNumber string `gorm:"not null"`
	BankName      string `gorm:"not null"`
	Category      string `gorm:"not null;index"`

	PriceSmall  *int
	PriceMedium *int
	PriceLarge  *int

	Rating float64 `gorm:"default:0"`
	Tags   string  // comma-separated

	SubaccountCode string `gorm:"column:paystack_subaccount_code"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (ServiceProvider) TableName() string {
	return "service_providers"
}

type VendorDAO struct {
	db *gorm.DB
}

func NewVendorDAO(db *gorm.DB) *VendorDAO {
	return &VendorDAO{
		db: db,
	}
}

func (d *VendorDAO) Insert(ctx context.Context, vendor ServiceProvider) (ServiceProvider, error) {
	result := d.db.WithContext(ctx).Create(&vendor)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return ServiceProvider{}, ErrVendorEmailExists
		}

		return ServiceProvider{}, result.Error
	}

	return vendor, nil
}

func (d *VendorDAO) FindByID(ctx context.Context, id uint) (ServiceProvider, error) {
	var vendor ServiceProvider

	result := d.db.WithContext(ctx).First(&vendor, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ServiceProvider{}, ErrVendorNotFound
		}

		return ServiceProvider{}, result.Error
	}

	return vendor, nil
}

func (d *VendorDAO) FindByEmail(ctx context.Context, email string) (ServiceProvider, error) {
	var vendor ServiceProvider

	result := d.db.WithContext(ctx).First(&vendor, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ServiceProvider{}, ErrVendorNotFound
		}

		return ServiceProvider{}, result.Error
	}

	return vendor, nil
}

func (d *VendorDAO) Update(ctx context.Context, id uint, fields map[string]any) (ServiceProvider, error) {
	result := d.db.WithContext(ctx).Model(&ServiceProvider{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return ServiceProvider{}, result.Error
	}
	if result.RowsAffected == 0 {
		return ServiceProvider{}, ErrVendorNotFound
	}

	return d.FindByID(ctx, id)
}

// Recommend filters vendors by category and tier price within budget,
// best rated first, cheapest first within a rating. When nothing fits
// the budget it falls back to the top three by rating.
//
// tier must be validated by the caller; it becomes a column name.
func (d *VendorDAO) Recommend(ctx context.Context, category string, budget int, tier string, tags []string) ([]ServiceProvider, error) {
	priceColumn := "price_" + tier

	query := d.db.WithContext(ctx).
		Where("category = ?", category).
		Where(fmt.Sprintf("%s IS NOT NULL AND %s <= ?", priceColumn, priceColumn), budget)
	for _, tag := range tags {
		query = query.Where("tags LIKE ?", "%"+tag+"%")
	}

	var vendors []ServiceProvider
	result := query.Order(fmt.Sprintf("rating DESC, %s ASC", priceColumn)).Find(&vendors)
	if result.Error != nil {
		return nil, result.Error
	}

	if len(vendors) > 0 {
		return vendors, nil
	}

	fallback := d.db.WithContext(ctx).Where("category = ?", category)
	for _, tag := range tags {
		fallback = fallback.Where("tags LIKE ?", "%"+tag+"%")
	}

	result = fallback.Order("rating DESC").Limit(3).Find(&vendors)
	if result.Error != nil {
		return nil, result.Error
	}

	return vendors, nil
}
