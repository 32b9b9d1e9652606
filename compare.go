// Copyright 2026 the zulu authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zulu

import "time"

// Instanter is implemented by values that can produce the absolute instant
// they refer to. DateTime always can; Naive never can and reports a
// NaiveComparisonError instead.
type Instanter interface {
	Instant() (time.Time, error)
}

// Compare compares the instants of two values, ignoring display zones.
// It returns -1, 0 or 1 as dt is before, simultaneous with or after o.
func (dt DateTime) Compare(o DateTime) int {
	return dt.t.Compare(o.t)
}

// Equal reports whether dt and o are the same instant, ignoring display
// zones.
func (dt DateTime) Equal(o DateTime) bool {
	return dt.t.Equal(o.t)
}

// Before reports whether the instant of dt is before that of o.
func (dt DateTime) Before(o DateTime) bool {
	return dt.t.Before(o.t)
}

// After reports whether the instant of dt is after that of o.
func (dt DateTime) After(o DateTime) bool {
	return dt.t.After(o.t)
}

// Compare compares the instants of a and b. It fails with a
// NaiveComparisonError when either side is a naive reading that has not
// been resolved to a zone.
func Compare(a, b Instanter) (int, error) {
	at, err := a.Instant()
	if err != nil {
		return 0, err
	}
	bt, err := b.Instant()
	if err != nil {
		return 0, err
	}
	return at.Compare(bt), nil
}

// Equal reports whether a and b are the same instant, with the same
// failure behavior as Compare.
func Equal(a, b Instanter) (bool, error) {
	c, err := Compare(a, b)
	return c == 0, err
}

// Before reports whether a is before b, with the same failure behavior as
// Compare.
func Before(a, b Instanter) (bool, error) {
	c, err := Compare(a, b)
	return c < 0, err
}

// After reports whether a is after b, with the same failure behavior as
// Compare.
func After(a, b Instanter) (bool, error) {
	c, err := Compare(a, b)
	return c > 0, err
}
