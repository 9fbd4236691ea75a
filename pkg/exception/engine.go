package exception

import "github.com/yanun0323/errors"

// Engine boundary errors. All of them are logged and absorbed by the
// outbound gateway; none propagates back to the inbound dispatch path.
var (
	ErrSessionNotFound      = errors.New("engine: session not found")
	ErrMessageValidation    = errors.New("engine: outgoing message failed validation")
	ErrUnsupportedMessage   = errors.New("engine: unsupported message kind")
	ErrMalformedPayload     = errors.New("engine: message payload does not match its kind")
	ErrSessionClosed        = errors.New("engine: session closed")
	ErrDuplicateSession     = errors.New("engine: session already registered")
	ErrInvalidSequenceReset = errors.New("engine: invalid sequence reset target")
)
