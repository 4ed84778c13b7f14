package domain

import "time"

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
)

// Payment is the local record of a vendor payment. It is created pending
// before the payer is redirected to the gateway and is the source of
// truth once verified.
type Payment struct {
	ID             uint          `json:"id"`
	SenderID       uint          `json:"sender_id"`
	ReceiverID     uint          `json:"receiver_id"`
	EventID        *uint         `json:"event_id,omitempty"`
	Amount         int           `json:"amount"`
	Reference      string        `json:"reference"`
	Status         PaymentStatus `json:"status"`
	PaidAt         *time.Time    `json:"paid_at,omitempty"`
	Package        PackageTier   `json:"package_selected"`
	SubaccountCode string        `json:"-"`
	CreatedAt      time.Time     `json:"created_at"`
}

// PaymentRecord is the history projection joining event and party names.
type PaymentRecord struct {
	PaymentID  uint          `json:"payment_id"`
	EventID    *uint         `json:"event_id,omitempty"`
	EventName  string        `json:"event_name,omitempty"`
	VendorName string        `json:"vendor_name,omitempty"`
	BuyerEmail string        `json:"buyer_email,omitempty"`
	Amount     int           `json:"amount"`
	Reference  string        `json:"reference"`
	Status     PaymentStatus `json:"status"`
	PaidAt     *time.Time    `json:"paid_at,omitempty"`
	Package    PackageTier   `json:"package_selected"`
}
