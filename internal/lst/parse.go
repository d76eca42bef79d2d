package lst

import (
	"time"
)

// instantLayouts are the layouts ParseInstant tries, in order.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseInstant parses an instant from a string. Layouts without a zone
// designator are read as UTC (callers converting from local solar time apply
// ToUTC themselves). Unparseable input yields an *InvalidInputError.
func ParseInstant(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range instantLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, &InvalidInputError{Input: s, Err: firstErr}
}
