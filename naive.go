// Copyright 2026 the zulu authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zulu

import (
	"fmt"
	"time"
)

// Naive is a wall clock reading with no timezone attached. It carries no
// instant: the same reading names a different instant in every zone, so it
// must be resolved with UTC, In or InLocation before it can be compared or
// used in arithmetic.
type Naive struct {
	Year        int
	Month       time.Month
	Day         int
	Hour        int
	Minute      int
	Second      int
	Microsecond int
}

// NaiveFromTime returns the wall clock fields of t with its zone dropped.
func NaiveFromTime(t time.Time) Naive {
	return Naive{
		Year:        t.Year(),
		Month:       t.Month(),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Microsecond: t.Nanosecond() / int(time.Microsecond),
	}
}

// UTC resolves the reading under the explicit assumption that it is UTC.
func (n Naive) UTC() (DateTime, error) {
	return New(n.Year, n.Month, n.Day, n.Hour, n.Minute, n.Second, n.Microsecond)
}

// In resolves the reading in the named zone as per parser.Location.
func (n Naive) In(zone string) (DateTime, error) {
	return NewIn(n.Year, n.Month, n.Day, n.Hour, n.Minute, n.Second, n.Microsecond, zone)
}

// InLocation resolves the reading in loc.
func (n Naive) InLocation(loc *time.Location) (DateTime, error) {
	return NewInLocation(n.Year, n.Month, n.Day, n.Hour, n.Minute, n.Second, n.Microsecond, loc)
}

// FromNaive converts a naive reading to a DateTime. The source zone must be
// given explicitly, "UTC" included; an empty zone is rejected with an
// AmbiguousTimeError rather than assuming a default.
func FromNaive(n Naive, zone string) (DateTime, error) {
	if zone == "" {
		return DateTime{}, &AmbiguousTimeError{Naive: n}
	}
	return n.In(zone)
}

// Instant implements Instanter. A naive reading has no instant and always
// reports a NaiveComparisonError.
func (n Naive) Instant() (time.Time, error) {
	return time.Time{}, &NaiveComparisonError{Naive: n}
}

func (n Naive) String() string {
	s := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", n.Year, n.Month, n.Day, n.Hour, n.Minute, n.Second)
	if n.Microsecond != 0 {
		s += fmt.Sprintf(".%06d", n.Microsecond)
	}
	return s
}
