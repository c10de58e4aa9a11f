package matrix

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrConfiguration matches every *ConfigurationError.
	ErrConfiguration = errors.New("[Matrix] configuration error")

	// ErrTransport matches every *TransportError.
	ErrTransport = errors.New("[Matrix] transport error")

	// ErrDecode matches every *DecodeError.
	ErrDecode = errors.New("[Matrix] decode error")

	// ErrEmptyMethod is returned when Call is invoked without a method name.
	ErrEmptyMethod = errors.New("[Matrix] empty method")

	// ErrUnexpectedStatus is the cause of a TransportError built from a non-2xx response.
	ErrUnexpectedStatus = errors.New("[Matrix] unexpected status")
)

// ConfigurationError reports the configuration fields that are missing or invalid.
type ConfigurationError struct {
	Fields []string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%v: %v", ErrConfiguration, e.Err)
	}
	return fmt.Sprintf("%v: invalid fields [%s]: %v", ErrConfiguration, strings.Join(e.Fields, ", "), e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// TransportError is returned when the request could not be completed:
// connection failures, timeouts, cancellation and non-2xx responses.
type TransportError struct {
	Method     string
	URL        string // API key redacted
	StatusCode int    // 0 when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v: %s: status %d: %v", ErrTransport, e.Method, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", ErrTransport, e.Method, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// DecodeError is returned when the response body is not valid JSON.
type DecodeError struct {
	Method string
	Body   []byte // truncated
	Err    error
}

const maxErrorBody = 256

func newDecodeError(method string, body []byte, err error) *DecodeError {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return &DecodeError{
		Method: method,
		Body:   append([]byte(nil), body...),
		Err:    err,
	}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrDecode, e.Method, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// errorKind is used as a metrics label.
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDecode):
		return "decode"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	default:
		return "unknown"
	}
}
