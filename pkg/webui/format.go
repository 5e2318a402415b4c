package webui

import (
	"fmt"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

// FormatAUDate reformats an ISO YYYY-MM-DD date string as DD/MM/YYYY.
// Empty input yields "", anything that does not split into three dash
// parts is returned unchanged.
func FormatAUDate(value string) string {
	if value == "" {
		return ""
	}
	parts := strings.Split(value, "-")
	if len(parts) < 3 {
		return value
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// FormatAgeAt renders the age of a purchase date as of today, in whole
// months with a day-of-month correction so an incomplete month is not
// rounded up. Future dates and unparseable input yield "".
func FormatAgeAt(value string, today time.Time) string {
	if value == "" {
		return ""
	}
	purchased, err := time.Parse(isoDate, value)
	if err != nil {
		return ""
	}

	totalMonths := (today.Year()-purchased.Year())*12 + int(today.Month()) - int(purchased.Month())
	if today.Day() < purchased.Day() {
		totalMonths--
	}
	if totalMonths < 0 {
		return ""
	}

	years := totalMonths / 12
	months := totalMonths % 12
	switch {
	case years > 0 && months > 0:
		return fmt.Sprintf("%dy %dm", years, months)
	case years > 0:
		return fmt.Sprintf("%dy", years)
	case months > 0:
		return fmt.Sprintf("%dm", months)
	default:
		return "< 1m"
	}
}

func formatDayFirst(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%d", t.Day(), int(t.Month()), t.Year())
}

// AppendHistoryAt appends a dated history line to existing notes text,
// separated by a newline when there is prior text.
func AppendHistoryAt(existing, entry string, today time.Time) string {
	line := formatDayFirst(today) + " - " + entry
	if existing != "" {
		return strings.TrimRight(existing, " \t\r\n") + "\n" + line
	}
	return line
}
