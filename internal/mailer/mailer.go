// Package mailer delivers contact-form submissions to the site owner's inbox
// through the Resend API.
package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/wanderlustbites/content-service/config"
)

// ContactMessage is one contact-form submission.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// Mailer sends a contact message and returns the provider's message id.
type Mailer interface {
	SendContactMessage(ctx context.Context, msg ContactMessage) (string, error)
}

// ResendMailer is the production Mailer backed by the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
	to     string
	log    *zap.Logger
}

func NewResendMailer(cfg config.MailConfig, log *zap.Logger) *ResendMailer {
	if log == nil {
		log = zap.L()
	}
	return &ResendMailer{
		client: resend.NewClient(cfg.APIKey),
		from:   cfg.From,
		to:     cfg.To,
		log:    log,
	}
}

func (m *ResendMailer) SendContactMessage(ctx context.Context, msg ContactMessage) (string, error) {
	html, err := renderHTMLBody(msg)
	if err != nil {
		return "", fmt.Errorf("render mail body: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		Subject: fmt.Sprintf("Contact Form: Message from %s", msg.Name),
		Html:    html,
		Text:    renderTextBody(msg),
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("send mail: %w", err)
	}

	m.log.Info("contact mail sent", zap.String("mailId", sent.Id))
	return sent.Id, nil
}
