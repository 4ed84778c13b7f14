package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type IssueTicketRequest struct {
	EventID uint   `json:"event_id"`
	Email   string `json:"email"`
}

func (req *IssueTicketRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.Email, validation.Required, is.Email),
	)
}

type ScanTicketRequest struct {
	TicketCode string `json:"ticket_code"`
}

func (req *ScanTicketRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TicketCode, validation.Required, is.UUID),
	)
}
