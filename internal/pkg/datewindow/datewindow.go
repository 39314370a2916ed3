// Package datewindow carries the date/time values captured for sales
// and ticket windows: a calendar date, an optional wall-clock time, an
// optional Indonesian zone offset, and the human-readable display
// string shown on the dashboard.
package datewindow

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultOffset is assumed for windows captured without an explicit
// timezone (ticket validity windows are date-only on the dashboard).
const DefaultOffset = "+07:00"

const (
	dateLayout     = "2006-01-02"
	clockLayout    = "15:04"
	displayLayout  = "Jan 2, 2006"
	combinedLayout = "Jan 2, 2006 15:04"
)

// The three Indonesian time zones offered by the picker.
var zoneLabels = map[string]string{
	"+07:00": "WIB",
	"+08:00": "WITA",
	"+09:00": "WIT",
}

// ZoneLabel returns the picker label for a known offset, or the offset
// itself so unknown values still render.
func ZoneLabel(offset string) string {
	if label, ok := zoneLabels[offset]; ok {
		return label
	}

	return offset
}

// Value is one captured window edge. Time and TimeZone are empty for
// date-only captures; Display is what the dashboard renders.
type Value struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	TimeZone string `json:"timeZone"`
	Display  string `json:"formattedDate"`
}

// New builds a Value from raw picker parts, computing the display
// string. clock and offset may be empty for date-only windows.
func New(date, clock, offset string) (Value, error) {
	display, err := Format(date, clock, offset)
	if err != nil {
		return Value{}, err
	}

	return Value{
		Date:     date,
		Time:     clock,
		TimeZone: offset,
		Display:  display,
	}, nil
}

// Format renders "Jan 15, 2024" for a date-only capture and
// "Jan 15, 2024 14:30 WIB" when a time is present.
func Format(date, clock, offset string) (string, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q -> %w", date, err)
	}

	if clock == "" {
		return d.Format(displayLayout), nil
	}

	if _, err = time.Parse(clockLayout, clock); err != nil {
		return "", fmt.Errorf("invalid time %q -> %w", clock, err)
	}

	return fmt.Sprintf("%s %s %s", d.Format(displayLayout), clock, ZoneLabel(offset)), nil
}

// Canonical resolves the Value to the timestamp used for change
// comparison. The raw parts win when all three are present; otherwise
// the display string is parsed, assuming defaultOffset when the display
// carries no zone label.
func (v Value) Canonical(defaultOffset string) (time.Time, error) {
	if v.Date != "" && v.Time != "" && v.TimeZone != "" {
		return compose(v.Date, v.Time, v.TimeZone)
	}

	return ParseDisplay(v.Display, defaultOffset)
}

// IsZero reports whether nothing was captured at all.
func (v Value) IsZero() bool {
	return v.Date == "" && v.Time == "" && v.TimeZone == "" && v.Display == ""
}

func compose(date, clock, offset string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, date+"T"+clock+":00"+offset)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid window parts %q %q %q -> %w", date, clock, offset, err)
	}

	return t, nil
}

// ParseDisplay parses a dashboard display string ("Jan 15, 2024" or
// "Jan 15, 2024 14:30 WIB") back into a timestamp.
func ParseDisplay(display, defaultOffset string) (time.Time, error) {
	s := strings.TrimSpace(display)
	offset := defaultOffset

	for off, label := range zoneLabels {
		if strings.HasSuffix(s, " "+label) {
			s = strings.TrimSuffix(s, " "+label)
			offset = off
			break
		}
	}

	loc, err := fixedZone(offset)
	if err != nil {
		return time.Time{}, err
	}

	if t, err := time.ParseInLocation(combinedLayout, s, loc); err == nil {
		return t, nil
	}

	t, err := time.ParseInLocation(displayLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized display date %q -> %w", display, err)
	}

	return t, nil
}

// ParseCanonical parses a stored canonical timestamp (RFC3339).
func ParseCanonical(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid canonical timestamp %q -> %w", s, err)
	}

	return t, nil
}

func fixedZone(offset string) (*time.Location, error) {
	sign := 1
	switch {
	case strings.HasPrefix(offset, "+"):
	case strings.HasPrefix(offset, "-"):
		sign = -1
	default:
		return nil, fmt.Errorf("invalid zone offset %q", offset)
	}

	parts := strings.SplitN(offset[1:], ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid zone offset %q", offset)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid zone offset %q -> %w", offset, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid zone offset %q -> %w", offset, err)
	}

	return time.FixedZone(ZoneLabel(offset), sign*(hours*3600+minutes*60)), nil
}
