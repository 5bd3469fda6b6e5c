// Package planner implements the enrollment validation and schedule-conflict
// engine: resolving ambiguous 12-hour catalog times onto a 24-hour line,
// expanding day patterns, detecting section overlaps, gating enrollment by
// program level, and managing a student's named schedules. The package is
// pure: it performs no I/O and owns no goroutines.
package planner

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat marks a time token the grid cannot place. Callers
// treat it as non-fatal: such sections never conflict and are never drawn.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// ResolveHour maps a raw catalog time token like "7:00" or "1:30" to a
// 24-hour wall-clock hour. The catalog stores no AM/PM marker, so hours are
// resolved heuristically: 7 through 12 are already in 24-hour form (morning
// and midday classes), 1 through 6 are afternoon and map to hour+12. Any
// other hour is rejected.
func ResolveHour(raw string) (int, error) {
	h, err := parseHour(raw)
	if err != nil {
		return 0, err
	}
	return resolveHour(h)
}

// ResolveRange resolves a "start-end" time range into a half-open
// [start, end) pair of 24-hour hours. When the resolved end lands before the
// resolved start the range crossed noon (e.g. lab slots such as "4:00-7:00"),
// and the end bound is re-read as PM.
func ResolveRange(times string) (int, int, error) {
	first, second, found := strings.Cut(times, "-")
	if !found {
		return 0, 0, ErrInvalidTimeFormat
	}

	startRaw, err := parseHour(first)
	if err != nil {
		return 0, 0, err
	}
	endRaw, err := parseHour(second)
	if err != nil {
		return 0, 0, err
	}

	start, err := resolveHour(startRaw)
	if err != nil {
		return 0, 0, err
	}
	end, err := resolveHour(endRaw)
	if err != nil {
		return 0, 0, err
	}

	if end < start {
		if endRaw == 12 {
			end = 12
		} else {
			end = endRaw + 12
		}
	}
	return start, end, nil
}

// parseHour extracts the integer hour before the colon.
func parseHour(token string) (int, error) {
	hourPart, _, _ := strings.Cut(strings.TrimSpace(token), ":")
	h, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}
	return h, nil
}

func resolveHour(h int) (int, error) {
	switch {
	case h >= 7 && h <= 12:
		return h, nil
	case h >= 1 && h <= 6:
		return h + 12, nil
	default:
		return 0, ErrInvalidTimeFormat
	}
}
