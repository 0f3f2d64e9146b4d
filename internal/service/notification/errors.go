package notification

import (
	"errors"
	"fmt"
)

// ErrDisabled is returned when SMTP credentials are not configured.
var ErrDisabled = errors.New("signup notifications are disabled")

const (
	KindConfirmation = "confirmation"
	KindAlert        = "alert"
)

// DeliveryError reports which of the signup emails failed.
type DeliveryError struct {
	Kind string
	Err  error
}

func (e DeliveryError) Error() string {
	return fmt.Sprintf("send %s email: %v", e.Kind, e.Err)
}

func (e DeliveryError) Unwrap() error { return e.Err }
