package usecase

import (
	"fmt"
	"strings"
	"time"
)

var asOfLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
}

// ParseAsOf accepts YYYY-MM-DD, MM/DD/YYYY, MM/DD/YY, MM/DD (year taken from
// now) or RFC3339. Dates resolve to midnight in loc. An empty string yields
// the zero time, meaning "now".
func ParseAsOf(raw string, now time.Time, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	for _, layout := range asOfLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.ParseInLocation("1/2", raw, loc); err == nil {
		return time.Date(now.In(loc).Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidAsOf, raw)
}
