// Copyright 2026 the zulu authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package parser implements the string decoding collaborators for the zulu
// datetime value: strict ISO8601, RFC2822 mailbox dates, strftime and date
// field patterns, free form inputs, durations and timezone identifiers.
//
// Every entry point reports failure with a typed error rather than a zero
// value; see ParseError, UnknownTimeZoneError and FormatError.
package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/errors"
	"github.com/araddon/dateparse"
	"github.com/jeffjen/datefmt"
	"github.com/relvacode/iso8601"
	"github.com/tj/go-naturaldate"
)

// Named formats understood by Parse in addition to strftime patterns,
// date field patterns and time package reference layouts.
const (
	FormatISO8601   = "ISO8601"
	FormatRFC2822   = "RFC2822"
	FormatTimestamp = "timestamp"
)

// DefaultFormats are tried, in order, when the caller supplies no format
// hints.
var DefaultFormats = []string{FormatISO8601, FormatRFC2822, FormatTimestamp}

// RFC2822 mailbox date layouts, most specific first. The day-of-week and
// seconds are both optional in the grammar.
var rfc2822Layouts = []string{
	"Mon, 02 Jan 2006 15:04:05 -0700",
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04 -0700",
	"Mon, 2 Jan 2006 15:04 MST",
	"02 Jan 2006 15:04:05 -0700",
	"02 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04 -0700",
	"2 Jan 2006 15:04 MST",
}

func parseISO8601(s string) (time.Time, error) {
	t, err := iso8601.ParseString(s)
	if err != nil {
		return time.Time{}, err
	}
	// The collaborator accepts a bare digit run such as "1623758400" as a
	// year; reject years outside the representable calendar so epoch
	// strings reach the timestamp format instead.
	if y := t.Year(); y < 1 || y > 9999 {
		return time.Time{}, fmt.Errorf("year %d out of range 1..9999: %q", y, s)
	}
	return t, nil
}

// ParseISO8601 parses a strict ISO8601 datetime in extended form with
// optional fractional seconds and offset. An absent offset is treated
// as UTC.
func ParseISO8601(s string) (time.Time, error) {
	t, err := parseISO8601(s)
	if err != nil {
		return time.Time{}, &ParseError{Input: s, Formats: []string{FormatISO8601}, Err: err}
	}
	return t, nil
}

func parseRFC2822(s string) (time.Time, error) {
	for _, layout := range rfc2822Layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("not an RFC2822 date: %q", s)
}

// ParseRFC2822 parses a date in the RFC2822 mailbox date grammar, e.g.
// "Tue, 15 Jun 2021 12:00:00 +0200".
func ParseRFC2822(s string) (time.Time, error) {
	t, err := parseRFC2822(s)
	if err != nil {
		return time.Time{}, &ParseError{Input: s, Formats: []string{FormatRFC2822}, Err: err}
	}
	return t, nil
}

func parseTimestamp(s string) (time.Time, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("not a POSIX timestamp: %q", s)
	}
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC(), nil
}

func parseFormat(s, format string, loc *time.Location) (time.Time, error) {
	switch format {
	case FormatISO8601:
		return parseISO8601(s)
	case FormatRFC2822:
		return parseRFC2822(s)
	case FormatTimestamp:
		return parseTimestamp(s)
	}
	if strings.ContainsRune(format, '%') {
		if err := ValidateStrftime(format); err != nil {
			return time.Time{}, err
		}
		return datefmt.Strptime(format, s)
	}
	layout, err := LayoutForPattern(format)
	if err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(layout, s, loc)
}

// Parse decodes s by trying each format hint in order; the first match
// wins. When every hint fails (or none are given beyond DefaultFormats),
// free form interpretation is attempted: first the fuzzy date parser, then
// the natural language parser with the current time as reference. Inputs
// that carry no zone information are interpreted in loc; a nil loc means
// UTC. A total failure is reported as a ParseError carrying s and every
// format attempted.
func Parse(s string, loc *time.Location, formats []string) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	attempted := formats
	if len(attempted) == 0 {
		attempted = DefaultFormats
	}
	errs := &errors.M{}
	for _, f := range attempted {
		t, err := parseFormat(s, f, loc)
		if err == nil {
			return t, nil
		}
		errs.Append(fmt.Errorf("%s: %w", f, err))
	}
	t, err := dateparse.ParseIn(s, loc)
	if err == nil {
		return t, nil
	}
	errs.Append(fmt.Errorf("freeform: %w", err))
	base := time.Now().In(loc)
	t, err = naturaldate.Parse(s, base)
	if err == nil && (!t.Equal(base) || strings.EqualFold(strings.TrimSpace(s), "now")) {
		return t, nil
	}
	if err == nil {
		// The natural language parser returns its base time unchanged
		// when the input contains no date expression at all.
		err = fmt.Errorf("no date expression in %q", s)
	}
	errs.Append(fmt.Errorf("natural: %w", err))
	all := make([]string, 0, len(attempted)+2)
	all = append(all, attempted...)
	all = append(all, "freeform", "natural")
	return time.Time{}, &ParseError{Input: s, Formats: all, Err: errs.Err()}
}
