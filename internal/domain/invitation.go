package domain

import "time"

type Invitee struct {
	ID         uint           `json:"id"`
	EventID    uint           `json:"event_id"`
	Name       string         `json:"name,omitempty"`
	Email      string         `json:"email"`
	TicketCode string         `json:"ticket_code,omitempty"` // empty for private events
	Status     ResponseStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// InviteeInput is one entry of an invite batch before persistence.
type InviteeInput struct {
	Name  string
	Email string
}

// InviteResult reports a best-effort fan-out: rows persisted vs
// notifications that actually went out.
type InviteResult struct {
	Invited           int `json:"invited"`
	NotificationsSent int `json:"notifications_sent"`
}

// InviteReply is returned to the guest on accept/reject. CalendarLink is
// only set on acceptance.
type InviteReply struct {
	Message      string `json:"message"`
	Status       ResponseStatus
	CalendarLink string `json:"calendar_link,omitempty"`
}

type Collaborator struct {
	ID          uint       `json:"id"`
	EventID     uint       `json:"event_id"`
	UserID      uint       `json:"user_id"`
	InviterID   uint       `json:"inviter_id"`
	Accepted    bool       `json:"accepted"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
