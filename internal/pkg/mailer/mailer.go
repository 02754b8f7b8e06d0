// Package mailer hands completed confirmation drafts to the external SMTP
// provider. It owns nothing beyond the transport: composition and audit
// logging live in the notification module.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

// ErrNotConfigured is returned when SMTP credentials are missing. The
// caller records it in the email audit log like any provider failure.
var ErrNotConfigured = errors.New("smtp credentials are not configured")

type Message struct {
	To      string
	Bcc     []string
	Subject string
	Text    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type SMTP struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewSMTP(host, port, username, password, from string) *SMTP {
	return &SMTP{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Send delivers one message. BCC recipients are added to the envelope but
// never to the headers. The provider call is atomic across the recipient
// list: there is no per-recipient failure reporting.
func (s *SMTP) Send(_ context.Context, msg Message) error {
	if s.host == "" || s.port == "" || s.username == "" || s.password == "" || s.from == "" {
		return ErrNotConfigured
	}
	if msg.To == "" {
		return errors.New("mailer: empty recipient")
	}

	rcpts := make([]string, 0, 1+len(msg.Bcc))
	rcpts = append(rcpts, msg.To)
	for _, bcc := range msg.Bcc {
		bcc = strings.TrimSpace(bcc)
		if bcc != "" {
			rcpts = append(rcpts, bcc)
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", s.from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", sanitizeHeader(msg.Subject)))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(msg.Text)
	sb.WriteString("\r\n")

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	return smtp.SendMail(addr, auth, s.from, rcpts, []byte(sb.String()))
}

func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
