package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"amparo-api/core/config"
)

// SendMail delivers a plain-text email through the configured SMTP relay.
func SendMail(to []string, subject, body string) error {
	cfg := config.Get()
	if cfg.SMTP.Host == "" {
		return fmt.Errorf("smtp not configured")
	}

	addr := fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port)

	msg := strings.Builder{}
	msg.WriteString("From: " + cfg.SMTP.From + "\r\n")
	msg.WriteString("To: " + strings.Join(to, ", ") + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString(body)

	var auth smtp.Auth
	if cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	}

	return smtp.SendMail(addr, auth, cfg.SMTP.From, to, []byte(msg.String()))
}
