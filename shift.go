// Copyright 2026 the zulu authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zulu

import "time"

// Shift is a signed combination of calendar units plus an optional display
// zone override. Years and months use calendar aware arithmetic: the day
// of month is clamped to the last valid day of the target month rather
// than overflowing into the next one. The remaining units are exact
// elapsed time.
type Shift struct {
	Years        int
	Months       int
	Weeks        int
	Days         int
	Hours        int
	Minutes      int
	Seconds      int
	Microseconds int

	// Zone, when non-nil, becomes the display zone of the result.
	Zone *time.Location
}

// Neg returns the shift with every unit negated. The zone override is
// kept.
func (s Shift) Neg() Shift {
	return Shift{
		Years:        -s.Years,
		Months:       -s.Months,
		Weeks:        -s.Weeks,
		Days:         -s.Days,
		Hours:        -s.Hours,
		Minutes:      -s.Minutes,
		Seconds:      -s.Seconds,
		Microseconds: -s.Microseconds,
		Zone:         s.Zone,
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Shift applies s to the value and returns the result; the receiver is
// never modified. Year and month arithmetic is applied first on the UTC
// calendar fields, then weeks and days, then the exact units.
func (dt DateTime) Shift(s Shift) DateTime {
	u := dt.t
	if s.Years != 0 || s.Months != 0 {
		year, month, day := u.Date()
		total := year*12 + int(month) - 1 + s.Years*12 + s.Months
		year = floorDiv(total, 12)
		month = time.Month(total - year*12 + 1)
		if dim := DaysInMonth(year, month); day > dim {
			day = dim
		}
		u = time.Date(year, month, day, u.Hour(), u.Minute(), u.Second(), u.Nanosecond(), time.UTC)
	}
	if s.Weeks != 0 || s.Days != 0 {
		u = u.AddDate(0, 0, s.Weeks*7+s.Days)
	}
	exact := time.Duration(s.Hours)*time.Hour +
		time.Duration(s.Minutes)*time.Minute +
		time.Duration(s.Seconds)*time.Second +
		time.Duration(s.Microseconds)*time.Microsecond
	u = u.Add(exact)
	loc := dt.loc
	if s.Zone != nil {
		loc = s.Zone
	}
	return DateTime{t: u, loc: loc}
}

// Add returns the value shifted by an exact elapsed time.
func (dt DateTime) Add(d Delta) DateTime {
	return DateTime{t: dt.t.Add(time.Duration(d)), loc: dt.loc}
}

// Sub returns the elapsed time between dt and o as a Delta. It is
// symmetric: a.Sub(b) == -b.Sub(a).
func (dt DateTime) Sub(o DateTime) Delta {
	return Delta(dt.t.Sub(o.t))
}
