package domain

import "time"

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// BudgetEntry is one line of an event's budget breakdown. Entries are
// appended when a vendor accepts a participation request and are only
// removed by an explicit event edit.
type BudgetEntry struct {
	Recipient string `json:"recipient"`
	Amount    int    `json:"amount"`
	Category  string `json:"category"`
}

type Event struct {
	ID                 uint          `json:"id"`
	OrganizerID        uint          `json:"organizer_id"`
	Name               string        `json:"name"`
	Date               string        `json:"date"`
	StartTime          string        `json:"start_time"`
	EndTime            string        `json:"end_time"`
	Location           string        `json:"location"`
	MinGuests          int           `json:"min_guests"`
	MaxGuests          int           `json:"max_guests"`
	Description        string        `json:"description"`
	TotalBudget        int           `json:"total_budget"`
	TicketPrice        int           `json:"ticket_price"`
	Visibility         Visibility    `json:"visibility"`
	HasInvitedGuests   bool          `json:"has_invited_guests"`
	HasAcceptedVendors bool          `json:"has_accepted_vendors"`
	BudgetBreakdown    []BudgetEntry `json:"budget_breakdown"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

func (e Event) IsPublic() bool {
	return e.Visibility == VisibilityPublic
}

// EventPatch applies "only supplied fields change" updates without
// assembling SQL by hand.
type EventPatch struct {
	Name            *string
	Date            *string
	StartTime       *string
	EndTime         *string
	Location        *string
	MinGuests       *int
	MaxGuests       *int
	Description     *string
	TotalBudget     *int
	TicketPrice     *int
	Visibility      *Visibility
	BudgetBreakdown *[]BudgetEntry
}

func (p EventPatch) IsEmpty() bool {
	return p.Name == nil && p.Date == nil && p.StartTime == nil && p.EndTime == nil &&
		p.Location == nil && p.MinGuests == nil && p.MaxGuests == nil &&
		p.Description == nil && p.TotalBudget == nil && p.TicketPrice == nil &&
		p.Visibility == nil && p.BudgetBreakdown == nil
}
