// Copyright 2026 the zulu authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zulu

import (
	"time"

	"github.com/jinzhu/now"
)

// Frame identifies a calendar frame for StartOf, EndOf and Span.
type Frame int

const (
	Century Frame = iota
	Decade
	Year
	Month
	Week
	Day
	Hour
	Minute
	Second
)

var frameNames = []string{"century", "decade", "year", "month", "week", "day", "hour", "minute", "second"}

func (f Frame) String() string {
	if f < Century || f > Second {
		return "unknown"
	}
	return frameNames[f]
}

// StartOf returns the first instant of the frame containing the value,
// computed on the UTC calendar. Weeks start on Sunday.
func (dt DateTime) StartOf(f Frame) DateTime {
	u := dt.t
	n := now.New(u)
	var s time.Time
	switch f {
	case Century:
		s = time.Date(u.Year()-u.Year()%100, time.January, 1, 0, 0, 0, 0, time.UTC)
	case Decade:
		s = time.Date(u.Year()-u.Year()%10, time.January, 1, 0, 0, 0, 0, time.UTC)
	case Year:
		s = n.BeginningOfYear()
	case Month:
		s = n.BeginningOfMonth()
	case Week:
		s = n.BeginningOfWeek()
	case Day:
		s = n.BeginningOfDay()
	case Hour:
		s = n.BeginningOfHour()
	case Minute:
		s = n.BeginningOfMinute()
	default:
		s = u.Truncate(time.Second)
	}
	return DateTime{t: s, loc: dt.loc}
}

// EndOf returns the last representable instant of the frame containing the
// value, one microsecond before the next frame starts.
func (dt DateTime) EndOf(f Frame) DateTime {
	u := dt.t
	n := now.New(u)
	var e time.Time
	switch f {
	case Century:
		e = dt.StartOf(Century).t.AddDate(100, 0, 0).Add(-time.Nanosecond)
	case Decade:
		e = dt.StartOf(Decade).t.AddDate(10, 0, 0).Add(-time.Nanosecond)
	case Year:
		e = n.EndOfYear()
	case Month:
		e = n.EndOfMonth()
	case Week:
		e = n.EndOfWeek()
	case Day:
		e = n.EndOfDay()
	case Hour:
		e = n.EndOfHour()
	case Minute:
		e = n.EndOfMinute()
	default:
		e = u.Truncate(time.Second).Add(time.Second - time.Nanosecond)
	}
	return DateTime{t: e.Truncate(time.Microsecond), loc: dt.loc}
}

// Span returns the start and end of the frame containing the value.
func (dt DateTime) Span(f Frame) (DateTime, DateTime) {
	return dt.StartOf(f), dt.EndOf(f)
}
