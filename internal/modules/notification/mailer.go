package notification

import (
	"fmt"
	"net/smtp"

	"dealershub/internal/config"
)

// SMTPMailer sends plain-text mail over SMTP. Callers treat every send as
// best-effort per the dispatcher contract.
type SMTPMailer struct {
	cfg config.SMTP
}

// NewSMTPMailer returns nil when no transport is configured so that callers
// can keep a plain nil-check.
func NewSMTPMailer(cfg config.SMTP) *SMTPMailer {
	if !cfg.Configured() {
		return nil
	}
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.cfg.From, to, subject, body)

	addr := m.cfg.Host + ":" + m.cfg.Port
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	}

	return smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg))
}
