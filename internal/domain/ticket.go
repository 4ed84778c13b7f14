package domain

import "time"

type Ticket struct {
	ID        uint      `json:"id"`
	Code      string    `json:"ticket_code"`
	EventID   uint      `json:"event_id"`
	Email     string    `json:"email"`
	UserID    *uint     `json:"user_id,omitempty"`
	IsScanned bool      `json:"is_scanned"`
	CreatedAt time.Time `json:"created_at"`
}

// TicketLog is one row of the append-only attendance trail; exactly one
// row exists per successful scan.
type TicketLog struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	EventID   uint      `json:"event_id"`
	ScannedBy uint      `json:"scanned_by"`
	ScannedAt time.Time `json:"scanned_at"`
}

const (
	ScanStatusValid   = "valid"
	ScanStatusInvalid = "invalid"
)

type ScanResult struct {
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
	EventID   uint   `json:"event_id,omitempty"`
	EventName string `json:"event_name,omitempty"`
}
