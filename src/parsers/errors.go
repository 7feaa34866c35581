package parsers

import (
	"errors"
	"fmt"
)

var (
	ErrRateNotFound = errors.New("rate location not found")
	ErrInvalidRate  = errors.New("invalid rate value")
)

const (
	MsgRateNotFound    = "Could not find exchange rate on the page"
	MsgUSDRateNotFound = "Could not find USD exchange rate"
	MsgInvalidRate     = "Invalid exchange rate found"
)

type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindInvalid
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	}
	return "unknown"
}

// ExtractionError reports why no rate could be read from a document.
// Message is meant for the user; errors.Is matches ErrRateNotFound or
// ErrInvalidRate depending on Kind.
type ExtractionError struct {
	Kind     ErrorKind
	Strategy string
	Message  string
	Raw      string // located text, set for KindInvalid
	Err      error
}

func (e *ExtractionError) Error() string {
	msg := e.Message
	if e.Raw != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Raw)
	}
	if e.Strategy != "" {
		msg = e.Strategy + ": " + msg
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ExtractionError) Unwrap() []error {
	sentinel := ErrRateNotFound
	if e.Kind == KindInvalid {
		sentinel = ErrInvalidRate
	}
	if e.Err == nil {
		return []error{sentinel}
	}
	return []error{sentinel, e.Err}
}

func notFound(strategy, message string) *ExtractionError {
	return &ExtractionError{Kind: KindNotFound, Strategy: strategy, Message: message}
}

func invalidRate(strategy, raw string, cause error) *ExtractionError {
	return &ExtractionError{Kind: KindInvalid, Strategy: strategy, Message: MsgInvalidRate, Raw: raw, Err: cause}
}
