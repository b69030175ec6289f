package entity

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrValidation marks bad or missing input detected before any network
	// call. Callers must handle it synchronously; no remote effect occurred.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an entity lookup that yielded nothing.
	ErrNotFound = errors.New("not found")

	// ErrLocationUnsupported means no location capability is available.
	ErrLocationUnsupported = errors.New("geolocation not supported")

	// ErrLocationDenied means the location capability exists but refused to
	// produce a fix.
	ErrLocationDenied = errors.New("location access denied")
)

// RemoteError is a non-2xx backend response. Message carries the server's
// error message when one was present in the body.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// AsRemote unwraps err into a RemoteError if one is in its chain.
func AsRemote(err error) (*RemoteError, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
