package domain

import (
	"time"
)

// DefaultDateFormat is used when no date format is configured
const DefaultDateFormat = "Y-M-D"

// Built-in date-typed properties
var builtinDateAttrs = []string{"entry", "start", "end", "due", "wait", "scheduled", "until", "modified"}

// Presenter renders stored values for display
type Presenter interface {
	// RenderAttribute formats a stored property value
	RenderAttribute(property, value string) string
	// FormatTimestamp formats an epoch second
	FormatTimestamp(epoch int64) string
	// ParseDate reads a stored date value into epoch seconds
	ParseDate(value string) (int64, error)
}

// Display renders date- and duration-typed values with a date format and
// passes everything else through verbatim
type Display struct {
	DateFormat string
	Location   *time.Location

	dateAttrs     map[string]bool
	durationAttrs map[string]bool
}

// Ensure Display implements Presenter
var _ Presenter = (*Display)(nil)

// NewDisplay creates a Display. extraDates and durations name user
// attributes of those types; built-in date properties are always included.
func NewDisplay(dateFormat string, loc *time.Location, extraDates, durations []string) *Display {
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}
	if loc == nil {
		loc = time.Local
	}

	d := &Display{
		DateFormat:    dateFormat,
		Location:      loc,
		dateAttrs:     make(map[string]bool),
		durationAttrs: make(map[string]bool),
	}
	for _, name := range builtinDateAttrs {
		d.dateAttrs[name] = true
	}
	for _, name := range extraDates {
		d.dateAttrs[name] = true
	}
	for _, name := range durations {
		d.durationAttrs[name] = true
	}
	return d
}

// IsDate reports whether a property is date-typed
func (d *Display) IsDate(property string) bool {
	return d.dateAttrs[property]
}

// IsDuration reports whether a property is duration-typed
func (d *Display) IsDuration(property string) bool {
	return d.durationAttrs[property]
}

// RenderAttribute formats dates and durations; unparseable values are
// returned unchanged
func (d *Display) RenderAttribute(property, value string) string {
	switch {
	case d.IsDate(property):
		epoch, err := d.ParseDate(value)
		if err != nil {
			return value
		}
		return d.FormatTimestamp(epoch)
	case d.IsDuration(property):
		secs, err := ParseDuration(value)
		if err != nil {
			return value
		}
		return FormatDuration(secs)
	default:
		return value
	}
}

// FormatTimestamp formats an epoch second in the display location
func (d *Display) FormatTimestamp(epoch int64) string {
	return FormatDate(time.Unix(epoch, 0).In(d.Location), d.DateFormat)
}

// ParseDate reads a date value, treating zoneless forms as local to the display
func (d *Display) ParseDate(value string) (int64, error) {
	return ParseDate(value, d.Location)
}
