package email

import (
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"
)

const defaultName = "User"

// WaitlistEmailData contains the data needed for waitlist email templates.
type WaitlistEmailData struct {
	Name    string
	Email   string
	AppName string
}

func (d WaitlistEmailData) appName() string {
	if d.AppName == "" {
		return "Glider"
	}
	return d.AppName
}

func (d WaitlistEmailData) name() string {
	if strings.TrimSpace(d.Name) == "" {
		return defaultName
	}
	return d.Name
}

// BuildWaitlistConfirmationEmail welcomes a new signup.
func BuildWaitlistConfirmationEmail(data WaitlistEmailData) Message {
	appName := data.appName()
	name := html.EscapeString(data.name())

	subject := fmt.Sprintf("🚀 Welcome to %s Waitlist!", appName)

	textBody := fmt.Sprintf(`Welcome to %s, %s!

Thank you for joining the %s waitlist. We're excited to have you on board!

We'll notify you as soon as we launch. In the meantime, feel free to reach out if you have any questions.

Best regards,
The %s Team

You're receiving this email because you signed up for the %s waitlist.
If this wasn't you, please ignore this email.`,
		appName, data.name(), appName, appName, appName)

	htmlBody := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #4F46E5;">Welcome to %s, %s!</h2>
  <p>Thank you for joining the %s waitlist. We're excited to have you on board!</p>
  <p>We'll notify you as soon as we launch. In the meantime, feel free to reach out if you have any questions.</p>
  <p>Best regards,<br>The %s Team</p>
  <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 20px 0;">
  <p style="font-size: 12px; color: #6b7280;">
    You're receiving this email because you signed up for the %s waitlist.
    If this wasn't you, please ignore this email.
  </p>
</div>`,
		appName, name, appName, appName, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// SignupAlertData describes a new entry for the operator alert.
type SignupAlertData struct {
	AdminAddress string
	ReplyTo      string
	Name         string
	Fields       []Field
	Total        int
	AppName      string
}

// BuildSignupAlertEmail tells the operator about a new waitlist entry.
func BuildSignupAlertEmail(data SignupAlertData) Message {
	appName := WaitlistEmailData{AppName: data.AppName}.appName()
	name := WaitlistEmailData{Name: data.Name}.name()

	subject := fmt.Sprintf("🎉 New Waitlist Signup: %s", name)

	htmlBody := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #4F46E5;">New Waitlist Signup 🎉</h2>
  <p>A new user has joined the %s waitlist!</p>
  <div style="background: #f9fafb; padding: 15px; border-radius: 8px; margin: 20px 0;">
    %s
  </div>
  <p>Total waitlist signups: <strong>%d</strong></p>
  <p>Best regards,<br>%s Notification System</p>
</div>`,
		appName, FormatFields(data.Fields, ""), data.Total, appName)

	return Message{
		To:       []string{data.AdminAddress},
		ReplyTo:  data.ReplyTo,
		Subject:  subject,
		HTMLBody: htmlBody,
	}
}

// FormatFields renders fields as HTML lines. Nested maps and slices are
// expanded one level deeper with an indent; empty values show as N/A.
func FormatFields(fields []Field, prefix string) string {
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		key := html.EscapeString(f.Key)
		if nested, ok := nestedFields(f.Value); ok {
			lines = append(lines, key+":<br>"+FormatFields(nested, "&nbsp;&nbsp;"))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s%s: <strong>%s</strong>", prefix, key, html.EscapeString(displayValue(f.Value))))
	}
	return strings.Join(lines, "<br>")
}

func nestedFields(v any) ([]Field, bool) {
	switch t := v.(type) {
	case map[string]any:
		if len(t) == 0 {
			return nil, true
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]Field, 0, len(keys))
		for _, k := range keys {
			out = append(out, Field{Key: k, Value: t[k]})
		}
		return out, true
	case []any:
		out := make([]Field, 0, len(t))
		for i, item := range t {
			out = append(out, Field{Key: strconv.Itoa(i), Value: item})
		}
		return out, true
	}
	return nil, false
}

func displayValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "N/A"
	case string:
		if t == "" {
			return "N/A"
		}
		return t
	case bool:
		if !t {
			return "N/A"
		}
		return "true"
	case float64:
		if t == 0 {
			return "N/A"
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		if t == 0 {
			return "N/A"
		}
		return strconv.Itoa(t)
	}
	return fmt.Sprint(v)
}
