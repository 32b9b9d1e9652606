// Copyright 2026 the zulu authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package zulu provides an immutable datetime value that is always
// normalized to UTC, with parsing of ISO8601, RFC2822 and free form
// strings, timezone conversion, calendar aware arithmetic and locale aware
// formatting.
//
// A DateTime stores an absolute instant together with a display zone that
// is used only when rendering calendar fields; equality and ordering are
// defined on the instant alone. Every operation returns a new value, so
// instances may be shared freely across goroutines.
package zulu

import (
	"time"

	"github.com/ThomasChiroux/zulu/parser"
)

// DateTime is an immutable point in time held in UTC at microsecond
// precision. The zero value is the zero instant rendered in UTC.
type DateTime struct {
	t   time.Time      // the instant, always UTC
	loc *time.Location // display zone, nil means UTC
}

func (dt DateTime) location() *time.Location {
	if dt.loc == nil {
		return time.UTC
	}
	return dt.loc
}

// New returns the DateTime for the given UTC calendar fields. Fields are
// validated against their calendar ranges, day against the days in the
// given month and year; violations are reported as an InvalidFieldError.
func New(year int, month time.Month, day, hour, minute, second, microsecond int) (DateTime, error) {
	if err := validateFields(year, month, day, hour, minute, second, microsecond); err != nil {
		return DateTime{}, err
	}
	t := time.Date(year, month, day, hour, minute, second, microsecond*int(time.Microsecond), time.UTC)
	return DateTime{t: t}, nil
}

// NewIn is like New but interprets the fields as local to the named zone
// (as per parser.Location) and normalizes the instant to UTC. The display
// zone of the result is the named zone.
func NewIn(year int, month time.Month, day, hour, minute, second, microsecond int, zone string) (DateTime, error) {
	loc, err := parser.Location(zone)
	if err != nil {
		return DateTime{}, err
	}
	return NewInLocation(year, month, day, hour, minute, second, microsecond, loc)
}

// NewInLocation is like NewIn with an already resolved location.
func NewInLocation(year int, month time.Month, day, hour, minute, second, microsecond int, loc *time.Location) (DateTime, error) {
	if err := validateFields(year, month, day, hour, minute, second, microsecond); err != nil {
		return DateTime{}, err
	}
	t := time.Date(year, month, day, hour, minute, second, microsecond*int(time.Microsecond), loc)
	return DateTime{t: t.UTC(), loc: loc}, nil
}

// Now returns the current instant from the system clock, normalized to UTC
// with UTC as the display zone.
func Now() DateTime {
	return DateTime{t: time.Now().UTC().Truncate(time.Microsecond)}
}

// FromTime reinterprets a native timezone aware value at the same absolute
// instant. The display zone is taken from t and sub-microsecond precision
// is truncated.
func FromTime(t time.Time) DateTime {
	return DateTime{t: t.UTC().Truncate(time.Microsecond), loc: t.Location()}
}

// FromUnix returns the DateTime for a POSIX timestamp expressed as seconds
// and microseconds since the epoch.
func FromUnix(sec, usec int64) DateTime {
	return DateTime{t: time.Unix(sec, usec*int64(time.Microsecond)).UTC()}
}

// FromOrdinal returns the DateTime at midnight UTC of the day with the
// given proleptic Gregorian ordinal, where Jan 1 of year 1 has ordinal 1.
func FromOrdinal(n int) (DateTime, error) {
	if n < 1 || n > maxOrdinal {
		return DateTime{}, &InvalidFieldError{Field: "ordinal", Value: n, Min: 1, Max: maxOrdinal}
	}
	year, month, day := dateFromOrdinal(n)
	return DateTime{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}, nil
}

// Ordinal returns the proleptic Gregorian ordinal of the value's UTC date.
func (dt DateTime) Ordinal() int {
	return ordinalOf(dt.t.Year(), dt.t.Month(), dt.t.Day())
}

// In returns a copy with the same instant and the display zone set to the
// named zone, as per parser.Location.
func (dt DateTime) In(zone string) (DateTime, error) {
	loc, err := parser.Location(zone)
	if err != nil {
		return DateTime{}, err
	}
	return dt.InLocation(loc), nil
}

// InLocation returns a copy with the same instant and the display zone set
// to loc.
func (dt DateTime) InLocation(loc *time.Location) DateTime {
	return DateTime{t: dt.t, loc: loc}
}

// UTC returns a copy with the display zone set to UTC.
func (dt DateTime) UTC() DateTime {
	return DateTime{t: dt.t}
}

// Local returns a copy with the display zone set to the host timezone.
func (dt DateTime) Local() DateTime {
	return dt.InLocation(time.Local)
}

// Time returns the instant as a native time.Time in the display zone.
func (dt DateTime) Time() time.Time {
	return dt.t.In(dt.location())
}

// Naive returns the wall clock reading of the instant in the display zone
// with the zone dropped.
func (dt DateTime) Naive() Naive {
	return NaiveFromTime(dt.Time())
}

// Instant implements Instanter.
func (dt DateTime) Instant() (time.Time, error) {
	return dt.t, nil
}

// Unix returns the POSIX timestamp in seconds.
func (dt DateTime) Unix() int64 {
	return dt.t.Unix()
}

// UnixMicro returns the POSIX timestamp in microseconds.
func (dt DateTime) UnixMicro() int64 {
	return dt.t.UnixMicro()
}

// Calendar fields, rendered in the display zone.

func (dt DateTime) Year() int { return dt.Time().Year() }

func (dt DateTime) Month() time.Month { return dt.Time().Month() }

func (dt DateTime) Day() int { return dt.Time().Day() }

func (dt DateTime) Hour() int { return dt.Time().Hour() }

func (dt DateTime) Minute() int { return dt.Time().Minute() }

func (dt DateTime) Second() int { return dt.Time().Second() }

func (dt DateTime) Microsecond() int { return dt.Time().Nanosecond() / int(time.Microsecond) }

// Weekday returns the day of the week in the display zone.
func (dt DateTime) Weekday() time.Weekday {
	return dt.Time().Weekday()
}

// ISOWeek returns the ISO 8601 year and week number in the display zone.
func (dt DateTime) ISOWeek() (int, int) {
	return dt.Time().ISOWeek()
}

// YearDay returns the day of the year in the display zone.
func (dt DateTime) YearDay() int {
	return dt.Time().YearDay()
}

// Zone returns the display zone's abbreviation and its offset east of UTC
// in seconds at the value's instant.
func (dt DateTime) Zone() (string, int) {
	return dt.Time().Zone()
}

// AtDate returns a copy with the date fields of the display zone rendering
// replaced; the time of day fields are kept.
func (dt DateTime) AtDate(year int, month time.Month, day int) (DateTime, error) {
	local := dt.Time()
	return NewInLocation(year, month, day, local.Hour(), local.Minute(), local.Second(),
		local.Nanosecond()/int(time.Microsecond), dt.location())
}

// AtTime returns a copy with the time of day fields of the display zone
// rendering replaced; the date fields are kept.
func (dt DateTime) AtTime(hour, minute, second, microsecond int) (DateTime, error) {
	local := dt.Time()
	return NewInLocation(local.Year(), local.Month(), local.Day(), hour, minute, second,
		microsecond, dt.location())
}
