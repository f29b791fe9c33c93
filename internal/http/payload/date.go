package payload

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout renders dates the way clients expect them, e.g. "Mon Jan 01 2024".
const DateLayout = "Mon Jan 02 2006"

var ErrInvalidDate = errors.New("invalid date")

var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	time.RFC3339,
	"2006-01-02T15:04:05",
	DateLayout,
	"Mon Jan 2 2006",
}

// ParseDate returns midnight UTC of the calendar date described by s.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// FormatDate renders the UTC calendar day of t. Stored dates are midnight
// UTC but come back from the driver in the host's zone.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func isDate(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := ParseDate(s); err != nil {
		return fmt.Errorf("%w: must be a date such as 2006-01-02", ErrInvalidDate)
	}
	return nil
}

func optionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
