package notify

import "errors"

var (
	// ErrSendFailed is returned when SendGrid rejects or fails to deliver
	ErrSendFailed = errors.New("notify: failed to send booking email")
)
