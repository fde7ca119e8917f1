// Package email delivers the portal's transactional mail. Today that is only the
// password-reset code.
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/resend/resend-go/v2"
)

// Message is one outgoing email. HTML is the primary part; Text is the plain fallback.
type Message struct {
	To       string
	Subject  string
	HTML     string
	Text     string
	Category string // reported to the provider as a tag, e.g. "password_reset"
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

const categoryPasswordReset = "password_reset"

var resetHTML = template.Must(template.New("reset").Parse(
	`<p>Your password reset code is <strong>{{.Code}}</strong>.</p>` +
		`<p>It expires in {{.Minutes}} minutes. If you did not ask for it, ignore this email.</p>`,
))

// PasswordResetMessage renders the reset-code email for to. ttl is shown rounded down to minutes.
func PasswordResetMessage(to, code string, ttl time.Duration) (Message, error) {
	minutes := int(ttl / time.Minute)

	var html bytes.Buffer
	if err := resetHTML.Execute(&html, struct {
		Code    string
		Minutes int
	}{code, minutes}); err != nil {
		return Message{}, fmt.Errorf("render reset email: %w", err)
	}

	return Message{
		To:       to,
		Subject:  "Your password reset code",
		HTML:     html.String(),
		Text:     fmt.Sprintf("Your password reset code is %s. It expires in %d minutes.", code, minutes),
		Category: categoryPasswordReset,
	}, nil
}

// LogSender writes the plain-text part to the log instead of delivering it, so reset codes
// can be read from the console during development.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.logger.InfoContext(ctx, "email not delivered, logged instead",
		"to", msg.To, "subject", msg.Subject, "category", msg.Category, "text", msg.Text)
	return nil
}

type ResendSender struct {
	client *resend.Client
	from   string
}

func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey), from: from}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	req := s.request(msg)
	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("send %s email: %w", msg.Category, err)
	}
	return nil
}

func (s *ResendSender) request(msg Message) *resend.SendEmailRequest {
	req := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}
	if msg.Category != "" {
		req.Tags = []resend.Tag{{Name: "category", Value: msg.Category}}
	}
	return req
}

// NewSender logs mail for ENV=local or when no Resend key is configured, and delivers it
// through Resend otherwise.
func NewSender(env, apiKey, from string, logger *slog.Logger) Sender {
	if env == "local" || apiKey == "" {
		return NewLogSender(logger.With("component", "email"))
	}
	return NewResendSender(apiKey, from)
}
