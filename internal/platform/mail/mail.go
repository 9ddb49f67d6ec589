// Package mail delivers invite notifications over SMTP. The sender is a
// no-op when no SMTP host is configured, so it is always safe to wire up
// regardless of deployment environment.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/sitewatch/sitewatch/pkg/slogx"
)

// Config holds the SMTP connection settings. An empty Host disables sending.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	UseTLS   bool

	// BaseURL is the externally reachable service root used to build the
	// invite acceptance link.
	BaseURL string
}

type Sender struct {
	cfg Config
}

func NewSender(cfg Config) *Sender {
	return &Sender{cfg: cfg}
}

// Enabled reports whether the sender will actually deliver mail.
func (s *Sender) Enabled() bool { return s.cfg.Host != "" }

// SendInvite composes and delivers the invite email. The raw token is only
// ever embedded in the accept link; it is never logged.
func (s *Sender) SendInvite(ctx context.Context, toEmail, orgName string, role domain.Role, token string) error {
	log := slogx.FromContext(ctx)

	if !s.Enabled() {
		log.Debug("mail disabled, skipping invite delivery", slog.String("to", toEmail))
		return nil
	}

	acceptURL := strings.TrimRight(s.cfg.BaseURL, "/") + "/v1/invites/accept?token=" + token
	subject := fmt.Sprintf("You've been invited to join %s on SiteWatch", orgName)
	body := strings.Join([]string{
		"Hello,",
		"",
		fmt.Sprintf("%s has invited you to join their safety observation workspace as %s.", orgName, roleLabel(role)),
		"",
		"Choose a password and activate your account here:",
		"  " + acceptURL,
		"",
		"If you weren't expecting this invitation you can ignore this email.",
		"",
		"The SiteWatch team",
	}, "\r\n")

	headers := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n",
		s.cfg.From, toEmail, subject,
	)
	msg := []byte(headers + body + "\r\n")

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseTLS {
		return sendMailTLS(addr, s.cfg.Host, auth, s.cfg.From, []string{toEmail}, msg)
	}
	return smtp.SendMail(addr, auth, s.cfg.From, []string{toEmail}, msg)
}

func roleLabel(role domain.Role) string {
	switch role {
	case domain.RoleManager:
		return "a safety manager"
	case domain.RoleActionOwner:
		return "an action owner"
	default:
		return "an observer"
	}
}

// sendMailTLS connects via implicit TLS (port 465 / SMTPS). For the 587
// STARTTLS pattern, the dial fails and we fall back to smtp.SendMail, which
// upgrades the connection itself.
func sendMailTLS(addr, host string, auth smtp.Auth, from string, to []string, msg []byte) error {
	tlsConfig := &tls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
	}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return smtp.SendMail(addr, auth, from, to, msg)
	}
	defer conn.Close()

	hostname, _, _ := net.SplitHostPort(addr)
	c, err := smtp.NewClient(conn, hostname)
	if err != nil {
		return fmt.Errorf("smtp new client: %w", err)
	}
	defer c.Quit() //nolint:errcheck

	if auth != nil {
		if err := c.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}
	if err := c.Mail(from); err != nil {
		return fmt.Errorf("smtp MAIL FROM: %w", err)
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return fmt.Errorf("smtp RCPT TO %s: %w", rcpt, err)
		}
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}
	return nil
}
