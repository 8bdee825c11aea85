package errors

import (
	"errors"
	"fmt"
	"net/url"
)

type Kind int

const (
	KindConfiguration Kind = iota + 1
	KindEndpoint
	KindMissingOptionalKey
	KindTypeMismatch
	KindMissingField
	KindUnknownStatus
	KindDelivery
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindEndpoint:
		return "endpoint"
	case KindMissingOptionalKey:
		return "missing optional key"
	case KindTypeMismatch:
		return "type mismatch"
	case KindMissingField:
		return "missing field"
	case KindUnknownStatus:
		return "unknown status"
	case KindDelivery:
		return "delivery"
	default:
		return "unknown"
	}
}

// Expected отличает штатные отклонения от настоящих сбоев:
// о них пишем в лог, но не шлём уведомление о падении.
func (k Kind) Expected() bool {
	return k == KindMissingOptionalKey || k == KindDelivery
}

// Sentinels for errors.Is, matched by kind only.
var (
	ErrConfiguration      = &Error{Kind: KindConfiguration}
	ErrEndpoint           = &Error{Kind: KindEndpoint}
	ErrMissingOptionalKey = &Error{Kind: KindMissingOptionalKey}
	ErrTypeMismatch       = &Error{Kind: KindTypeMismatch}
	ErrMissingField       = &Error{Kind: KindMissingField}
	ErrUnknownStatus      = &Error{Kind: KindUnknownStatus}
	ErrDelivery           = &Error{Kind: KindDelivery}
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error

	// endpoint diagnostics
	StatusCode int
	Reason     string
	Params     url.Values
	Body       string

	// undelivered text for KindDelivery
	Message string
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: status %d %s", msg, e.StatusCode, e.Reason)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func (e *Error) Expected() bool {
	return e.Kind.Expected()
}

// IsExpected reports whether err carries an expected deviation kind.
func IsExpected(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Expected()
}

func KindOf(err error) Kind {
	var e *Error
	if !errors.As(err, &e) {
		return 0
	}
	return e.Kind
}

func Configuration(err error) *Error {
	return &Error{Kind: KindConfiguration, Msg: "configuration is invalid", Err: err}
}

func Endpoint(msg string, err error) *Error {
	return &Error{Kind: KindEndpoint, Msg: msg, Err: err}
}

func MissingOptionalKey(key string) *Error {
	return &Error{Kind: KindMissingOptionalKey, Msg: fmt.Sprintf("response missing optional key `%s`", key)}
}

func TypeMismatch(msg string) *Error {
	return &Error{Kind: KindTypeMismatch, Msg: msg}
}

func MissingField(field string) *Error {
	return &Error{Kind: KindMissingField, Msg: fmt.Sprintf("homework missing key `%s`", field)}
}

func UnknownStatus(status string) *Error {
	return &Error{Kind: KindUnknownStatus, Msg: fmt.Sprintf("unexpected homework status `%s`", status)}
}

func Delivery(message string, err error) *Error {
	return &Error{Kind: KindDelivery, Msg: "message is not delivered", Err: err, Message: message}
}
