package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type RequestVendorRequest struct {
	VendorID uint   `json:"vendor_id"`
	Service  string `json:"service_to_be_rendered"`
	Price    int    `json:"price"`
}

func (req *RequestVendorRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.VendorID, validation.Required),
		validation.Field(&req.Service, validation.Required),
		validation.Field(&req.Price, validation.Required, validation.Min(0)),
	)
}

type RespondToRequestRequest struct {
	EventID  uint `json:"event_id"`
	Accepted bool `json:"accepted"`
}

func (req *RespondToRequestRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
	)
}
