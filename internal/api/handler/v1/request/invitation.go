package request

import (
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/zidepeople/runevents-api/internal/domain"
)

type InviteeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (req InviteeRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Email, validation.Required, is.Email),
	)
}

// InviteGuestsRequest accepts either a structured invitee list or a raw
// string of comma/whitespace-separated addresses. At least one is required.
type InviteGuestsRequest struct {
	Invitees []InviteeRequest `json:"invitees"`
	Emails   string           `json:"emails"`
	Message  string           `json:"message"`
}

func (req *InviteGuestsRequest) Validate() error {
	if len(splitEmails(req.Emails)) == 0 {
		if err := validation.Validate(req.Invitees, validation.Required); err != nil {
			return validation.Errors{"invitees": err}
		}
	}

	if err := validation.ValidateStruct(
		req,
		validation.Field(&req.Invitees),
	); err != nil {
		return err
	}

	for _, email := range splitEmails(req.Emails) {
		if err := is.Email.Validate(email); err != nil {
			return validation.Errors{"emails": err}
		}
	}

	return nil
}

func (req *InviteGuestsRequest) ToDomain() []domain.InviteeInput {
	invitees := make([]domain.InviteeInput, 0, len(req.Invitees))
	for _, invitee := range req.Invitees {
		invitees = append(invitees, domain.InviteeInput{
			Name:  invitee.Name,
			Email: invitee.Email,
		})
	}
	for _, email := range splitEmails(req.Emails) {
		invitees = append(invitees, domain.InviteeInput{Email: email})
	}

	return invitees
}

func splitEmails(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
}

type InviteCollaboratorRequest struct {
	Email string `json:"email"`
}

func (req *InviteCollaboratorRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
	)
}

type RespondToCollaborationRequest struct {
	Accepted bool `json:"accepted"`
}
