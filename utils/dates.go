package utils

import (
	"errors"
	"strings"
	"time"
)

const (
	FormDateLayout      = "2006-01-02"
	CanonicalDateLayout = "20060102"
	PrettyDateLayout    = "January 02, 2006"
)

var ErrBadDate = errors.New("date must be in YYYY-MM-DD form")

// CanonicalDate turns a form date (YYYY-MM-DD) into the stored YYYYMMDD key.
func CanonicalDate(raw string) (string, error) {
	t, err := time.Parse(FormDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return "", ErrBadDate
	}
	return t.Format(CanonicalDateLayout), nil
}

// PrettyDate renders a canonical date as e.g. "June 05, 2024".
// Unparsable input is returned unchanged.
func PrettyDate(canonical string) string {
	t, err := time.Parse(CanonicalDateLayout, canonical)
	if err != nil {
		return canonical
	}
	return t.Format(PrettyDateLayout)
}
