package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrUnexpectedStatus is matched by FetchErrors caused by a non-2xx response.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// FetchError reports a failed GET for one URL.
// StatusCode is zero when no response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Timeout reports whether the request ran out of time.
func (e *FetchError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// Temporary reports whether another attempt could succeed: transport
// failures, timeouts, 429 and 5xx responses.
func (e *FetchError) Temporary() bool {
	if errors.Is(e.Err, context.Canceled) {
		return false
	}
	switch {
	case e.StatusCode == 0:
		return true
	case e.StatusCode == http.StatusTooManyRequests:
		return true
	case e.StatusCode >= http.StatusInternalServerError:
		return true
	default:
		return false
	}
}

// IsTemporary reports whether err wraps a temporary FetchError.
func IsTemporary(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Temporary()
}
