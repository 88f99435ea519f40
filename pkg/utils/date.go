package utils

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const ReleaseDateLayout = "2006-01-02"

// ParseReleaseDate accepts any common date layout and keeps only the calendar day.
func ParseReleaseDate(value string) (time.Time, error) {
	t, err := dateparse.ParseIn(strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func FormatReleaseDate(t time.Time) string {
	return t.Format(ReleaseDateLayout)
}
