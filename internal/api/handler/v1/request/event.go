package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/zidepeople/runevents-api/internal/domain"
)

type BudgetEntryRequest struct {
	Recipient string `json:"recipient"`
	Amount    int    `json:"amount"`
	Category  string `json:"category"`
}

func (req BudgetEntryRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Recipient, validation.Required),
		validation.Field(&req.Amount, validation.Min(0)),
	)
}

type CreateEventRequest struct {
	Name            string               `json:"name"`
	Date            string               `json:"date"`
	StartTime       string               `json:"start_time"`
	EndTime         string               `json:"end_time"`
	Location        string               `json:"location"`
	MinGuests       int                  `json:"min_guests"`
	MaxGuests       int                  `json:"max_guests"`
	Description     string               `json:"description"`
	TotalBudget     int                  `json:"total_budget"`
	TicketPrice     int                  `json:"ticket_price"`
	Visibility      string               `json:"visibility"`
	BudgetBreakdown []BudgetEntryRequest `json:"budget_breakdown"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.StartTime, validation.Required, validation.Date("15:04")),
		validation.Field(&req.EndTime, validation.Required, validation.Date("15:04")),
		validation.Field(&req.Location, validation.Required),
		validation.Field(&req.MinGuests, validation.Min(0)),
		validation.Field(&req.MaxGuests, validation.Min(req.MinGuests)),
		validation.Field(&req.TotalBudget, validation.Min(0)),
		validation.Field(&req.TicketPrice, validation.Min(0)),
		validation.Field(&req.Visibility, validation.In("", "public", "private")),
	)
}

func (req *CreateEventRequest) ToDomain() domain.Event {
	breakdown := make([]domain.BudgetEntry, len(req.BudgetBreakdown))
	for i, entry := range req.BudgetBreakdown {
		breakdown[i] = domain.BudgetEntry{
			Recipient: entry.Recipient,
			Amount:    entry.Amount,
			Category:  entry.Category,
		}
	}

	return domain.Event{
		Name:            req.Name,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Location:        req.Location,
		MinGuests:       req.MinGuests,
		MaxGuests:       req.MaxGuests,
		Description:     req.Description,
		TotalBudget:     req.TotalBudget,
		TicketPrice:     req.TicketPrice,
		Visibility:      domain.Visibility(req.Visibility),
		BudgetBreakdown: breakdown,
	}
}

type UpdateEventRequest struct {
	Name            *string               `json:"name"`
	Date            *string               `json:"date"`
	StartTime       *string               `json:"start_time"`
	EndTime         *string               `json:"end_time"`
	Location        *string               `json:"location"`
	MinGuests       *int                  `json:"min_guests"`
	MaxGuests       *int                  `json:"max_guests"`
	Description     *string               `json:"description"`
	TotalBudget     *int                  `json:"total_budget"`
	TicketPrice     *int                  `json:"ticket_price"`
	Visibility      *string               `json:"visibility"`
	BudgetBreakdown *[]BudgetEntryRequest `json:"budget_breakdown"`
}

func (req *UpdateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Date, validation.Date("2006-01-02")),
		validation.Field(&req.StartTime, validation.Date("15:04")),
		validation.Field(&req.EndTime, validation.Date("15:04")),
		validation.Field(&req.MinGuests, validation.Min(0)),
		validation.Field(&req.MaxGuests, validation.Min(0)),
		validation.Field(&req.TotalBudget, validation.Min(0)),
		validation.Field(&req.TicketPrice, validation.Min(0)),
		validation.Field(&req.Visibility, validation.In("public", "private")),
	)
}

func (req *UpdateEventRequest) ToPatch() domain.EventPatch {
	patch := domain.EventPatch{
		Name:        req.Name,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		MinGuests:   req.MinGuests,
		MaxGuests:   req.MaxGuests,
		Description: req.Description,
		TotalBudget: req.TotalBudget,
		TicketPrice: req.TicketPrice,
	}
	if req.Visibility != nil {
		visibility := domain.Visibility(*req.Visibility)
		patch.Visibility = &visibility
	}
	if req.BudgetBreakdown != nil {
		breakdown := make([]domain.BudgetEntry, len(*req.BudgetBreakdown))
		for i, entry := range *req.BudgetBreakdown {
			breakdown[i] = domain.BudgetEntry{
				Recipient: entry.Recipient,
				Amount:    entry.Amount,
				Category:  entry.Category,
			}
		}
		patch.BudgetBreakdown = &breakdown
	}

	return patch
}

type RecommendVendorsRequest struct {
	Category string   `json:"category"`
	Budget   int      `json:"budget"`
	Package  string   `json:"package"`
	Tags     []string `json:"tags"`
}

func (req *RecommendVendorsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Category, validation.Required),
		validation.Field(&req.Budget, validation.Required, validation.Min(0)),
		validation.Field(&req.Package, validation.Required, validation.In("small", "medium", "large")),
	)
}
