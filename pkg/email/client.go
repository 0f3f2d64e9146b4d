package email

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"github.com/samber/lo"
	"gopkg.in/gomail.v2"

	"github.com/Alijeyrad/glider_backend/config"
)

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// Client sends through one SMTP account. A zero-credential client stays
// usable but reports Enabled() == false and refuses to send.
type Client struct {
	cfg  Config
	dial func(*gomail.Dialer, ...*gomail.Message) error
}

func NewFromCentral(cfg config.EmailConfig) (*Client, error) {
	return New(FromCentralConfig(cfg))
}

func New(cfg Config) (*Client, error) {
	if cfg.Enabled && strings.TrimSpace(cfg.SMTPHost) == "" {
		return nil, InvalidMessageError{Reason: "smtp host is required"}
	}
	return &Client{
		cfg:  cfg,
		dial: func(d *gomail.Dialer, m ...*gomail.Message) error { return d.DialAndSend(m...) },
	}, nil
}

// Enabled reports whether Send will attempt delivery.
func (c *Client) Enabled() bool {
	return c.cfg.Enabled && c.cfg.HasCredentials()
}

func (c *Client) Config() Config {
	return c.cfg
}

func (c *Client) Send(ctx context.Context, m Message) error {
	if !c.Enabled() {
		return ErrDisabled
	}

	msg, err := buildMessage(c.cfg.From, c.cfg.FromName, m)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- c.dial(c.newDialer(), msg)
	}()

	timer := time.NewTimer(c.waitFor(ctx))
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			return SendError{Provider: "gomail/smtp", Recipients: cleanAddrs(m.To), Err: err}
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return context.DeadlineExceeded
	}
}

// waitFor is the SMTP timeout, shortened to the ctx deadline when sooner.
func (c *Client) waitFor(ctx context.Context) time.Duration {
	wait := c.cfg.SMTPTimeout()
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left > 0 && left < wait {
			return left
		}
	}
	return wait
}

func (c *Client) newDialer() *gomail.Dialer {
	d := gomail.NewDialer(c.cfg.SMTPHost, c.cfg.SMTPPort, c.cfg.SMTPUsername, c.cfg.SMTPPassword)

	// use_tls means implicit TLS (465); on 587 gomail upgrades via STARTTLS.
	d.SSL = c.cfg.SMTPUseTLS
	d.TLSConfig = &tls.Config{ServerName: c.cfg.SMTPHost, MinVersion: tls.VersionTLS12}

	return d
}

func buildMessage(from, fromName string, m Message) (*gomail.Message, error) {
	msg := gomail.NewMessage()

	from = strings.TrimSpace(from)
	if from == "" {
		return nil, InvalidMessageError{Reason: "from is required"}
	}
	if fromName != "" {
		msg.SetAddressHeader("From", from, fromName)
	} else {
		msg.SetHeader("From", from)
	}

	to := cleanAddrs(m.To)
	if len(to) == 0 {
		return nil, InvalidMessageError{Reason: "at least one recipient is required"}
	}
	msg.SetHeader("To", to...)
	if rt := strings.TrimSpace(m.ReplyTo); rt != "" {
		msg.SetHeader("Reply-To", rt)
	}

	subj := strings.TrimSpace(m.Subject)
	if subj == "" {
		return nil, InvalidMessageError{Reason: "subject is required"}
	}
	msg.SetHeader("Subject", subj)

	hasText := strings.TrimSpace(m.TextBody) != ""
	hasHTML := strings.TrimSpace(m.HTMLBody) != ""

	switch {
	case hasText && hasHTML:
		msg.SetBody("text/plain", m.TextBody)
		msg.AddAlternative("text/html", m.HTMLBody)
	case hasHTML:
		msg.SetBody("text/html", m.HTMLBody)
	case hasText:
		msg.SetBody("text/plain", m.TextBody)
	default:
		return nil, InvalidMessageError{Reason: "either TextBody or HTMLBody is required"}
	}

	return msg, nil
}

func cleanAddrs(in []string) []string {
	return lo.Compact(lo.Map(in, func(s string, _ int) string { return strings.TrimSpace(s) }))
}
