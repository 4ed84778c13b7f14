package domain

import "time"

// ResponseStatus is the tri-state accept/decline lifecycle shared by
// vendor participations and guest invitations. Transitions out of
// Pending are one-way.
type ResponseStatus string

const (
	ResponsePending  ResponseStatus = "pending"
	ResponseAccepted ResponseStatus = "accepted"
	ResponseDeclined ResponseStatus = "declined"
)

func (s ResponseStatus) Responded() bool {
	return s == ResponseAccepted || s == ResponseDeclined
}

// VendorParticipation links an event to a requested vendor. One row per
// (event, vendor) pair.
type VendorParticipation struct {
	EventID   uint           `json:"event_id"`
	VendorID  uint           `json:"vendor_id"`
	Service   string         `json:"service_to_be_rendered"`
	Price     int            `json:"price"`
	Status    ResponseStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ParticipationStatus is the organizer-facing projection of a request.
type ParticipationStatus struct {
	VendorID   uint           `json:"vendor_id"`
	VendorName string         `json:"vendor_name"`
	Service    string         `json:"service_to_be_rendered"`
	Price      int            `json:"price"`
	Status     ResponseStatus `json:"status"`
}

// PendingRequest is the vendor-facing projection of an unanswered request.
type PendingRequest struct {
	EventID   uint   `json:"event_id"`
	EventName string `json:"event_name"`
	EventDate string `json:"event_date"`
	Location  string `json:"location"`
	Service   string `json:"service_to_be_rendered"`
	Price     int    `json:"price"`
}
