package dsn

import (
	"errors"
	"fmt"
)

// Error message text is part of the package contract: existing consumers
// pattern-match on it, including the leading capital letter. Do not reword.

// ErrInvalidFormat reports input that does not match the DSN grammar.
//
// SECURITY: the message deliberately omits the raw input, which may contain
// the password.
var ErrInvalidFormat = errors.New("Invalid DSN")

// MissingComponentError reports an empty mandatory component. Component is
// one of "protocol", "user", "host", "projectId".
type MissingComponentError struct {
	Component string
}

func (e *MissingComponentError) Error() string {
	return "Invalid DSN: Missing " + e.Component
}

// UnsupportedProtocolError reports a protocol other than http or https.
type UnsupportedProtocolError struct {
	Protocol string
}

func (e *UnsupportedProtocolError) Error() string {
	return fmt.Sprintf("Invalid DSN: Unsupported protocol %q", e.Protocol)
}

// InvalidPortError reports a port that is not a base-10 integer.
type InvalidPortError struct {
	Port string
}

func (e *InvalidPortError) Error() string {
	return fmt.Sprintf("Invalid DSN: Invalid port %q", e.Port)
}
