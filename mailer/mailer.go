package mailer

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-mail/mail/v2"
)

// Dialer is the SMTP seam; tests substitute a recorder.
type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type Mailer struct {
	dialer Dialer
	sender string
}

// NewFromEnv builds the mailer from SMTP_HOST/SMTP_PORT/SMTP_USERNAME/
// SMTP_PASSWORD/SMTP_SENDER.
func NewFromEnv() *Mailer {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	dialer := mail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	dialer.Timeout = 5 * time.Second

	sender := os.Getenv("SMTP_SENDER")
	if sender == "" {
		sender = "no-reply@inkwell.local"
	}
	return &Mailer{dialer: dialer, sender: sender}
}

func New(d Dialer, sender string) *Mailer {
	return &Mailer{dialer: d, sender: sender}
}

// SendResetLink mails the password reset URL to the account address.
func (m *Mailer) SendResetLink(recipient, link string) error {
	msg := mail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", "Password reset link")
	msg.SetBody("text/plain", fmt.Sprintf("Use the link below to reset your password. It expires in 20 minutes.\n\n%s\n", link))

	return m.dialer.DialAndSend(msg)
}
