package utils

import "time"

const entryDateLayout = "2006-01-02"

// ParseEntryDate parses the YYYY-MM-DD form used by journal entries.
func ParseEntryDate(s string) (time.Time, error) {
	t, err := time.Parse(entryDateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidInput
	}
	return t, nil
}

// FormatEntryDate renders a date back into YYYY-MM-DD, "" if zero.
func FormatEntryDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(entryDateLayout)
}
