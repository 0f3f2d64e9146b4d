package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gopkg.in/gomail.v2"
)

func enabledConfig() Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.From = "team@glider.world"
	cfg.SMTPUsername = "team@glider.world"
	cfg.SMTPPassword = "secret"
	return cfg
}

func TestSend_Disabled(t *testing.T) {
	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.Enabled() {
		t.Fatal("Enabled() = true for default config")
	}

	err = c.Send(context.Background(), Message{To: []string{"a@b.co"}, Subject: "s", TextBody: "b"})
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("Send() error = %v, want ErrDisabled", err)
	}
}

func TestSend_MissingCredentialsIsDisabled(t *testing.T) {
	cfg := enabledConfig()
	cfg.SMTPPassword = ""
	c, _ := New(cfg)

	if c.Enabled() {
		t.Error("Enabled() should be false without a password")
	}
}

func TestSend_DeliversAndWrapsErrors(t *testing.T) {
	c, err := New(enabledConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var got *gomail.Message
	c.dial = func(_ *gomail.Dialer, m ...*gomail.Message) error {
		got = m[0]
		return nil
	}

	msg := BuildWaitlistConfirmationEmail(WaitlistEmailData{Email: "ada@example.com", Name: "Ada"})
	if err := c.Send(context.Background(), msg); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if got == nil {
		t.Fatal("dialer was not called")
	}
	if rt := got.GetHeader("Reply-To"); len(rt) != 0 {
		t.Errorf("confirmation should not set Reply-To, got %v", rt)
	}
	if from := got.GetHeader("From"); len(from) != 1 || !strings.Contains(from[0], `"Glider" <team@glider.world>`) {
		t.Errorf("From header = %v", from)
	}

	boom := errors.New("connection refused")
	c.dial = func(*gomail.Dialer, ...*gomail.Message) error { return boom }

	err = c.Send(context.Background(), msg)
	var sendErr SendError
	if !errors.As(err, &sendErr) {
		t.Fatalf("Send() error = %v, want SendError", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("SendError should unwrap to the transport error")
	}
}

func TestSend_Timeout(t *testing.T) {
	c, _ := New(enabledConfig())
	block := make(chan struct{})
	defer close(block)
	c.dial = func(*gomail.Dialer, ...*gomail.Message) error {
		<-block
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Send(ctx, Message{To: []string{"a@b.co"}, Subject: "s", TextBody: "b"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Send() error = %v, want deadline exceeded", err)
	}
}

func TestBuildMessage_Validation(t *testing.T) {
	tests := []struct {
		name string
		from string
		msg  Message
	}{
		{name: "no from", from: "", msg: Message{To: []string{"a@b.co"}, Subject: "s", TextBody: "b"}},
		{name: "no recipient", from: "x@y.z", msg: Message{To: []string{" "}, Subject: "s", TextBody: "b"}},
		{name: "no subject", from: "x@y.z", msg: Message{To: []string{"a@b.co"}, TextBody: "b"}},
		{name: "no body", from: "x@y.z", msg: Message{To: []string{"a@b.co"}, Subject: "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildMessage(tt.from, "", tt.msg)
			var invalid InvalidMessageError
			if !errors.As(err, &invalid) {
				t.Errorf("buildMessage() error = %v, want InvalidMessageError", err)
			}
		})
	}
}

func TestBuildWaitlistConfirmationEmail(t *testing.T) {
	m := BuildWaitlistConfirmationEmail(WaitlistEmailData{Email: "ada@example.com"})

	if m.Subject != "🚀 Welcome to Glider Waitlist!" {
		t.Errorf("Subject = %q", m.Subject)
	}
	if !strings.Contains(m.HTMLBody, "Welcome to Glider, User!") {
		t.Error("name should default to User")
	}
	if len(m.To) != 1 || m.To[0] != "ada@example.com" {
		t.Errorf("To = %v", m.To)
	}
}

func TestBuildSignupAlertEmail(t *testing.T) {
	m := BuildSignupAlertEmail(SignupAlertData{
		AdminAddress: "ops@glider.world",
		ReplyTo:      "ada@example.com",
		Name:         "Ada <script>",
		Fields: []Field{
			{Key: "email", Value: "ada@example.com"},
			{Key: "name", Value: "Ada <script>"},
			{Key: "message", Value: ""},
			{Key: "data", Value: map[string]any{"role": "investor", "size": float64(3)}},
		},
		Total: 42,
	})

	if m.ReplyTo != "ada@example.com" {
		t.Errorf("ReplyTo = %q", m.ReplyTo)
	}
	if m.Subject != "🎉 New Waitlist Signup: Ada <script>" {
		t.Errorf("Subject = %q", m.Subject)
	}
	for _, want := range []string{
		"email: <strong>ada@example.com</strong>",
		"name: <strong>Ada &lt;script&gt;</strong>",
		"message: <strong>N/A</strong>",
		"data:<br>&nbsp;&nbsp;role: <strong>investor</strong><br>&nbsp;&nbsp;size: <strong>3</strong>",
		"Total waitlist signups: <strong>42</strong>",
	} {
		if !strings.Contains(m.HTMLBody, want) {
			t.Errorf("HTMLBody missing %q", want)
		}
	}
}
