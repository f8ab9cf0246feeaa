package youtube

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	ErrInvalidURL      = errors.New("invalid youtube channel url")
	ErrChannelNotFound = errors.New("channel not found")
	ErrQuotaExceeded   = errors.New("youtube api quota exceeded or invalid api key")
)

// classify maps Data API failures onto the package sentinels so callers can
// pick a status code with errors.Is.
func classify(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusForbidden:
			return fmt.Errorf("%s: %w: %s", op, ErrQuotaExceeded, gerr.Message)
		case http.StatusNotFound:
			return fmt.Errorf("%s: %w", op, ErrChannelNotFound)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
