package util

import (
	"fmt"
	"strconv"
	"strings"
)

// Durations are carried as integer minutes everywhere; hours only exist at
// the display boundary as "H:MM" strings.

// FormatMinutesToHM renders a minute quantity as "H:MM". Negative values
// keep a leading minus sign on the hour part.
func FormatMinutesToHM(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%d:%02d", sign, minutes/60, minutes%60)
}

// ParseHMToMinutes is the inverse of FormatMinutesToHM. Malformed input
// (missing colon, non-numeric parts) yields 0: free-text hour fields must
// never block on a half-typed value.
func ParseHMToMinutes(s string) int {
	s = strings.TrimSpace(s)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	h, m, found := strings.Cut(s, ":")
	if !found {
		return 0
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 {
		return 0
	}
	mins, err := strconv.Atoi(m)
	if err != nil || mins < 0 || mins > 59 {
		return 0
	}

	total := hours*60 + mins
	if negative {
		total = -total
	}
	return total
}
