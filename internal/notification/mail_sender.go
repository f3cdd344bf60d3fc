package notification

import (
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"go-leave/internal/config"
)

// MailSender performs the final delivery on the consumer side.
//
//go:generate mockgen -source=mail_sender.go -destination=mock/mail_sender_mock.go -package=mock
type MailSender interface {
	SendMail(ctx context.Context, to, subject, htmlBody string) error
}

// SendFunc matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpSender struct {
	cfg  config.MailConfig
	send SendFunc
}

func NewSMTPSender(cfg config.MailConfig) MailSender {
	return &smtpSender{cfg: cfg, send: smtp.SendMail}
}

// NewSMTPSenderWithFunc is NewSMTPSender with a replaceable transport.
func NewSMTPSenderWithFunc(cfg config.MailConfig, send SendFunc) MailSender {
	return &smtpSender{cfg: cfg, send: send}
}

func (s *smtpSender) SendMail(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(to) == "" {
		return ErrEmptyRecipient
	}

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	if err := s.send(addr, auth, s.cfg.From, []string{to}, BuildMessage(s.cfg.From, to, subject, htmlBody)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}

// BuildMessage renders an RFC 5322 message with an HTML body.
func BuildMessage(from, to, subject, htmlBody string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}
