package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/shivua6263/policy/internal/netx"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// Kind classifies a failed call.
type Kind int

const (
	// KindUnknown is a response the client could not interpret.
	KindUnknown Kind = iota
	// KindValidation carries field-specific messages.
	KindValidation
	// KindMessage carries a single server message.
	KindMessage
	// KindTransport means no response was received.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindMessage:
		return "message"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Failure is the error returned for every unsuccessful call.
type Failure struct {
	Kind       Kind
	Status     int
	StatusText string
	Message    string
	Fields     map[string][]string
	Err        error
}

func (f *Failure) Error() string {
	switch f.Kind {
	case KindTransport:
		return fmt.Sprintf("transport failure: %v", f.Err)
	case KindValidation:
		keys := make([]string, 0, len(f.Fields))
		for k := range f.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return fmt.Sprintf("%d %s: invalid %s", f.Status, f.StatusText, strings.Join(keys, ", "))
	default:
		if f.Message != "" {
			return fmt.Sprintf("%d %s: %s", f.Status, f.StatusText, f.Message)
		}
		return fmt.Sprintf("%d %s", f.Status, f.StatusText)
	}
}

func (f *Failure) Unwrap() error { return f.Err }

// Is lets callers match transport failures with ErrUnavailable and 401/403
// responses with ErrUnauthorized.
func (f *Failure) Is(target error) bool {
	switch target {
	case ErrUnavailable:
		return f.Kind == KindTransport
	case ErrUnauthorized:
		return f.Status == http.StatusUnauthorized || f.Status == http.StatusForbidden
	}
	return false
}

// Detail is the server message, falling back to the status text and then to
// the underlying error.
func (f *Failure) Detail() string {
	switch {
	case f.Message != "":
		return f.Message
	case f.StatusText != "":
		return f.StatusText
	case f.Err != nil:
		return f.Err.Error()
	default:
		return ""
	}
}

// FieldError returns the first message for field, if any.
func (f *Failure) FieldError(field string) (string, bool) {
	msgs := f.Fields[field]
	if len(msgs) == 0 {
		return "", false
	}
	return msgs[0], true
}

// HasResponse reports whether the server answered at all.
func (f *Failure) HasResponse() bool { return f.Kind != KindTransport && f.Status != 0 }

// TransportFailure wraps an error that prevented any response.
func TransportFailure(err error) *Failure {
	return &Failure{Kind: KindTransport, Err: err}
}

// ParseFailure maps a non-2xx response to a Failure.
//
// Recognised bodies: {"message": "..."}, {"error": "..."}, {"detail": "..."}
// and {"field": ["msg", ...]}. A body can carry both a message and field
// errors; it is then a validation failure with Message set.
func ParseFailure(status int, body []byte) *Failure {
	f := &Failure{Kind: KindUnknown, Status: status, StatusText: http.StatusText(status)}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return f
	}

	for _, key := range []string{"message", "error", "detail"} {
		var s string
		if v, ok := raw[key]; ok && json.Unmarshal(v, &s) == nil && s != "" {
			f.Message = s
			f.Kind = KindMessage
			break
		}
	}

	for key, v := range raw {
		var msgs []string
		if json.Unmarshal(v, &msgs) != nil || len(msgs) == 0 {
			continue
		}
		if f.Fields == nil {
			f.Fields = make(map[string][]string)
		}
		f.Fields[key] = msgs
	}
	if len(f.Fields) > 0 {
		f.Kind = KindValidation
	}
	return f
}

// AsFailure extracts a *Failure from err. Foreign errors become
// KindTransport when no response could have been received (cancelled or
// timed-out contexts, network errors) and KindUnknown otherwise.
func AsFailure(err error) *Failure {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	if netx.IsTransportError(err) {
		return TransportFailure(err)
	}
	return &Failure{Kind: KindUnknown, Err: err}
}
