package services

import (
	"context"
	"errors"
	"fmt"
)

const msgTryAgainLater = "Please try again later"

// FetchError reports a failed retrieval of the rate source page.
type FetchError struct {
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// UserMessage is the subtitle shown to the user for this failure.
func (e *FetchError) UserMessage() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("Rate source responded with status %d. %s", e.StatusCode, msgTryAgainLater)
	case errors.Is(e.Err, context.DeadlineExceeded):
		return "Rate source timed out. " + msgTryAgainLater
	}
	return msgTryAgainLater
}
