package response

// IssueTicketResponse carries the minted ticket and its QR code as a
// base64 PNG so the caller can render it inline.
type IssueTicketResponse struct {
	TicketID   uint   `json:"ticket_id"`
	TicketCode string `json:"ticket_code"`
	EventID    uint   `json:"event_id"`
	Email      string `json:"email"`
	QRCode     string `json:"qr_code"`
}
