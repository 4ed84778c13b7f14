package domain

import "time"

type PackageTier string

const (
	TierSmall  PackageTier = "small"
	TierMedium PackageTier = "medium"
	TierLarge  PackageTier = "large"
)

func (t PackageTier) IsValid() bool {
	return t == TierSmall || t == TierMedium || t == TierLarge
}

type Vendor struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	BusinessName   string    `json:"business_name"`
	AccountNumber  string    `json:"account_number"`
	BankName       string    `json:"bank_name"`
	Category       string    `json:"category"`
	PriceSmall     *int      `json:"price_small"`
	PriceMedium    *int      `json:"price_medium"`
	PriceLarge     *int      `json:"price_large"`
	Rating         float64   `json:"rating"`
	Tags           []string  `json:"tags"`
	SubaccountCode string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TierPrice resolves a package tier to its configured price.
// The second return is false when the vendor has no price for that tier.
func (v Vendor) TierPrice(tier PackageTier) (int, bool) {
	var price *int
	switch tier {
	case TierSmall:
		price = v.PriceSmall
	case TierMedium:
		price = v.PriceMedium
	case TierLarge:
		price = v.PriceLarge
	}

	if price == nil {
		return 0, false
	}

	return *price, true
}

type VendorPatch struct {
	BusinessName  *string
	AccountNumber *string
	BankName      *string
	Tags          *[]string
	PriceSmall    *int
	PriceMedium   *int
	PriceLarge    *int
}

func (p VendorPatch) IsEmpty() bool {
	return p.BusinessName == nil && p.AccountNumber == nil && p.BankName == nil &&
		p.Tags == nil && p.PriceSmall == nil && p.PriceMedium == nil && p.PriceLarge == nil
}
