package mailrelay

import "errors"

var (
	// ErrInternal is returned on request construction or transport failures
	ErrInternal = errors.New("mailrelay client: internal error")

	// ErrRejected is returned when the sink answers with a non-success status
	ErrRejected = errors.New("mailrelay client: sink rejected submission")
)
