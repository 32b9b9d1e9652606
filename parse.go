// Copyright 2026 the zulu authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zulu

import (
	"time"

	"github.com/ThomasChiroux/zulu/parser"
)

// Parse parses s into a DateTime, trying the given format hints in order
// and falling back to free form interpretation; see parser.Parse. Inputs
// that carry no zone information are assumed to be UTC. Failure is
// reported as a parser.ParseError carrying s and the attempted formats.
func Parse(s string, formats ...string) (DateTime, error) {
	return ParseIn(s, time.UTC, formats...)
}

// ParseIn is like Parse but interprets zone-less inputs in loc. The
// display zone of the result always comes from the parsed value itself.
func ParseIn(s string, loc *time.Location, formats ...string) (DateTime, error) {
	t, err := parser.Parse(s, loc, formats)
	if err != nil {
		return DateTime{}, err
	}
	return FromTime(t), nil
}

// ParseISO parses a strict ISO8601 string. An absent offset is treated as
// UTC.
func ParseISO(s string) (DateTime, error) {
	t, err := parser.ParseISO8601(s)
	if err != nil {
		return DateTime{}, err
	}
	return FromTime(t), nil
}

// ParseRFC2822 parses an RFC2822 mailbox date such as
// "Tue, 15 Jun 2021 12:00:00 +0200".
func ParseRFC2822(s string) (DateTime, error) {
	t, err := parser.ParseRFC2822(s)
	if err != nil {
		return DateTime{}, err
	}
	return FromTime(t), nil
}
