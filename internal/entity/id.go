package entity

import (
	"fmt"
	"strconv"
)

// ParseID validates an identifier coming from user input or session storage.
// The backend keys every entity by a numeric id, so anything empty or
// non-numeric fails fast with ErrValidation before a request is built.
func ParseID(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: missing identifier", ErrValidation)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: identifier %q is not numeric", ErrValidation, raw)
	}
	return id, nil
}
