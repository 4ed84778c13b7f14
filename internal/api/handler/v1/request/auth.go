package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var (
	passwordRegex      = regexp2.MustCompile(passwordRegexPattern, regexp2.None)
	errInvalidPassword = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
)

func validatePassword(password string) error {
	matched, err := passwordRegex.MatchString(password)
	if err != nil || !matched {
		return errInvalidPassword
	}

	return nil
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *SignupRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
	if err != nil {
		return err
	}

	return validatePassword(req.Password)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}

type VendorSignupRequest struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	BusinessName  string   `json:"business_name"`
	AccountNumber string   `json:"account_number"`
	BankName      string   `json:"bank_name"`
	Category      string   `json:"category"`
	PriceSmall    *int     `json:"price_small"`
	PriceMedium   *int     `json:"price_medium"`
	PriceLarge    *int     `json:"price_large"`
	Tags          []string `json:"tags"`
}

func (req *VendorSignupRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.BusinessName, validation.Required),
		validation.Field(&req.AccountNumber, validation.Required, is.Digit),
		validation.Field(&req.BankName, validation.Required),
		validation.Field(&req.Category, validation.Required),
		validation.Field(&req.PriceSmall, validation.Min(0)),
		validation.Field(&req.PriceMedium, validation.Min(0)),
		validation.Field(&req.PriceLarge, validation.Min(0)),
	)
	if err != nil {
		return err
	}

	return validatePassword(req.Password)
}

type UpdateProfileRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (req *UpdateProfileRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Email, is.Email),
	)
	if err != nil {
		return err
	}

	if req.Password != nil {
		return validatePassword(*req.Password)
	}

	return nil
}

type UpdateVendorRequest struct {
	BusinessName  *string   `json:"business_name"`
	AccountNumber *string   `json:"account_number"`
	BankName      *string   `json:"bank_name"`
	Tags          *[]string `json:"tags"`
	PriceSmall    *int      `json:"price_small"`
	PriceMedium   *int      `json:"price_medium"`
	PriceLarge    *int      `json:"price_large"`
}

func (req *UpdateVendorRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PriceSmall, validation.Min(0)),
		validation.Field(&req.PriceMedium, validation.Min(0)),
		validation.Field(&req.PriceLarge, validation.Min(0)),
	)
}
