// Copyright 2026 the zulu authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package parser

import (
	"fmt"
	"strings"
)

// ParseError is returned when an input string matches none of the attempted
// formats. It carries the original input and the formats that were tried so
// callers can report what failed; Err aggregates the per-format failures.
type ParseError struct {
	Input   string
	Formats []string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: no match in formats [%s]: %v", e.Input, strings.Join(e.Formats, ", "), e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnknownTimeZoneError is returned when a timezone identifier cannot be
// resolved against the host timezone database or as a fixed offset.
type UnknownTimeZoneError struct {
	Name string
}

func (e *UnknownTimeZoneError) Error() string {
	return fmt.Sprintf("unknown timezone: %q", e.Name)
}

// FormatError is returned when a formatting or parsing pattern contains a
// token that is not recognized.
type FormatError struct {
	Pattern string
	Token   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unknown token %q in pattern %q", e.Token, e.Pattern)
}
