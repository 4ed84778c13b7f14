package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/zidepeople/runevents-api/internal/config"
)

// Mailer sends notification emails through SendGrid. Delivery is
// fire-and-forget from the caller's point of view; batch callers log
// failures instead of propagating them.
type Mailer struct {
	conf *config.SendGridConfig
}

func New(conf *config.SendGridConfig) *Mailer {
	return &Mailer{
		conf: conf,
	}
}

func (m *Mailer) Send(toAddress, subject, body string) error {
	from := sgmail.NewEmail(m.conf.SenderName, m.conf.SenderEmail)
	to := sgmail.NewEmail("", toAddress)
	message := sgmail.NewSingleEmail(from, subject, to, body, body)

	client := sendgrid.NewSendClient(m.conf.APIKey)
	resp, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid.Send -> %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid.Send -> status %v: %v", resp.StatusCode, resp.Body)
	}

	return nil
}

// ResponseLink builds the frontend URL an invitee uses to respond.
func (m *Mailer) ResponseLink(eventID uint, email string) string {
	return fmt.Sprintf("%v/invites/respond?event_id=%v&email=%v", m.conf.ResponseBaseURL, eventID, email)
}
