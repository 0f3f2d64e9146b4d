package email

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDisabled is returned by Send when delivery is switched off or no
// credentials are configured.
var ErrDisabled = errors.New("email delivery is disabled")

type InvalidMessageError struct{ Reason string }

func (e InvalidMessageError) Error() string { return "invalid email message: " + e.Reason }

// SendError wraps a transport failure together with the intended recipients.
type SendError struct {
	Provider   string
	Recipients []string
	Err        error
}

func (e SendError) Error() string {
	return fmt.Sprintf("email send to %s failed (%s): %v", strings.Join(e.Recipients, ","), e.Provider, e.Err)
}

func (e SendError) Unwrap() error { return e.Err }
