package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a stored value cannot be read as a date
var ErrInvalidDate = errors.New("invalid date")

// ErrInvalidDuration is returned when a stored value cannot be read as a duration
var ErrInvalidDuration = errors.New("invalid duration")

// Zoneless layouts are interpreted in the caller's location.
var dateLayouts = []string{
	"20060102T150405Z",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate reads a stored date value into epoch seconds. Epoch integers,
// compact ISO-8601 and common extended forms are accepted.
func ParseDate(value string, loc *time.Location) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	if epoch, err := strconv.ParseInt(value, 10, 64); err == nil {
		return epoch, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.Unix(), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

func formatEpoch(epoch int64) string {
	return strconv.FormatInt(epoch, 10)
}

// FormatDuration renders seconds as e.g. "2d 3h 16min 40sec", omitting
// zero units.
func FormatDuration(seconds int64) string {
	if seconds == 0 {
		return "0sec"
	}

	var b strings.Builder
	if seconds < 0 {
		b.WriteByte('-')
		seconds = -seconds
	}

	units := []struct {
		size   int64
		suffix string
	}{
		{86400, "d"},
		{3600, "h"},
		{60, "min"},
		{1, "sec"},
	}

	first := true
	for _, u := range units {
		n := seconds / u.size
		seconds %= u.size
		if n == 0 {
			continue
		}
		if !first {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d%s", n, u.suffix)
		first = false
	}
	return b.String()
}

// ParseDuration reads an ISO-8601 duration (P1DT2H, PT30M, P2W) or a bare
// number of seconds. Years count as 365 days and months as 30.
func ParseDuration(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n, nil
	}
	if len(value) < 2 || (value[0] != 'P' && value[0] != 'p') {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
	}

	var total int64
	inTime := false
	digits := ""
	for _, r := range strings.ToUpper(value[1:]) {
		switch {
		case r >= '0' && r <= '9':
			digits += string(r)
			continue
		case r == 'T':
			if inTime || digits != "" {
				return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
			}
			inTime = true
			continue
		}

		if digits == "" {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
		}
		n, _ := strconv.ParseInt(digits, 10, 64)
		digits = ""

		var unit int64
		switch {
		case r == 'Y' && !inTime:
			unit = 365 * 86400
		case r == 'M' && !inTime:
			unit = 30 * 86400
		case r == 'W' && !inTime:
			unit = 7 * 86400
		case r == 'D' && !inTime:
			unit = 86400
		case r == 'H' && inTime:
			unit = 3600
		case r == 'M' && inTime:
			unit = 60
		case r == 'S' && inTime:
			unit = 1
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
		}
		total += n * unit
	}
	if digits != "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
	}
	return total, nil
}

// FormatDate renders t using a taskwarrior-style date format, where
// Y is the 4-digit year, M/D/H/N/S are zero-padded month, day, hour,
// minute and second, and lowercase letters are their unpadded forms.
// A/a and B/b are the long and short weekday and month names. Any other
// character is copied verbatim.
func FormatDate(t time.Time, format string) string {
	var b strings.Builder
	for _, r := range format {
		switch r {
		case 'Y':
			fmt.Fprintf(&b, "%04d", t.Year())
		case 'y':
			fmt.Fprintf(&b, "%02d", t.Year()%100)
		case 'M':
			fmt.Fprintf(&b, "%02d", int(t.Month()))
		case 'm':
			fmt.Fprintf(&b, "%d", int(t.Month()))
		case 'D':
			fmt.Fprintf(&b, "%02d", t.Day())
		case 'd':
			fmt.Fprintf(&b, "%d", t.Day())
		case 'H':
			fmt.Fprintf(&b, "%02d", t.Hour())
		case 'h':
			fmt.Fprintf(&b, "%d", t.Hour())
		case 'N':
			fmt.Fprintf(&b, "%02d", t.Minute())
		case 'n':
			fmt.Fprintf(&b, "%d", t.Minute())
		case 'S':
			fmt.Fprintf(&b, "%02d", t.Second())
		case 's':
			fmt.Fprintf(&b, "%d", t.Second())
		case 'A':
			b.WriteString(t.Weekday().String())
		case 'a':
			b.WriteString(t.Weekday().String()[:3])
		case 'B':
			b.WriteString(t.Month().String())
		case 'b':
			b.WriteString(t.Month().String()[:3])
		case 'j':
			fmt.Fprintf(&b, "%d", t.YearDay())
		case 'J':
			fmt.Fprintf(&b, "%03d", t.YearDay())
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
