package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type InitializePaymentRequest struct {
	VendorID uint   `json:"vendor_id"`
	Package  string `json:"package"`
	EventID  *uint  `json:"event_id"`
}

func (req *InitializePaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.VendorID, validation.Required),
		validation.Field(&req.Package, validation.Required, validation.In("small", "medium", "large")),
	)
}
