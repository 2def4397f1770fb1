package validator

import (
	"time"
	"unicode/utf8"
)

func EventTitle(title string) bool {
	return utf8.RuneCountInString(title) >= 1 && utf8.RuneCountInString(title) <= 200
}

// EventDates requires the start to be strictly before the end.
func EventDates(start, end time.Time) bool {
	return start.Before(end)
}
