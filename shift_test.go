// Copyright 2026 the zulu authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zulu_test

import (
	"testing"
	"time"

	"github.com/ThomasChiroux/zulu"
)

func TestShiftMonths(t *testing.T) {
	for i, tc := range []struct {
		start  string
		shift  zulu.Shift
		result string
	}{
		// Month-end clamping.
		{"2020-01-31T00:00:00Z", zulu.Shift{Months: 1}, "2020-02-29T00:00:00+00:00"},
		{"2021-01-31T00:00:00Z", zulu.Shift{Months: 1}, "2021-02-28T00:00:00+00:00"},
		{"2020-03-31T00:00:00Z", zulu.Shift{Months: -1}, "2020-02-29T00:00:00+00:00"},
		{"2020-02-29T00:00:00Z", zulu.Shift{Years: 1}, "2021-02-28T00:00:00+00:00"},
		// Plain month arithmetic.
		{"2020-03-01T00:00:00Z", zulu.Shift{Months: -1}, "2020-02-01T00:00:00+00:00"},
		{"2020-12-15T00:00:00Z", zulu.Shift{Months: 1}, "2021-01-15T00:00:00+00:00"},
		{"2020-01-15T00:00:00Z", zulu.Shift{Months: -13}, "2018-12-15T00:00:00+00:00"},
		{"2020-01-15T00:00:00Z", zulu.Shift{Years: 2, Months: 25}, "2024-02-15T00:00:00+00:00"},
		// Non-calendar units.
		{"2020-01-15T12:00:00Z", zulu.Shift{Weeks: 1, Days: 2}, "2020-01-24T12:00:00+00:00"},
		{"2020-01-15T12:00:00Z", zulu.Shift{Hours: -13}, "2020-01-14T23:00:00+00:00"},
		{"2020-01-15T12:00:00Z", zulu.Shift{Minutes: 90, Seconds: 30}, "2020-01-15T13:30:30+00:00"},
		{"2020-01-15T12:00:00Z", zulu.Shift{Microseconds: 1500000}, "2020-01-15T12:00:01.500000+00:00"},
	} {
		start, err := zulu.ParseISO(tc.start)
		if err != nil {
			t.Fatalf("%v: %v", i, err)
		}
		if got, want := start.UTC().Shift(tc.shift).ISOFormat(), tc.result; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestShiftExactInverse(t *testing.T) {
	v := mustNew(t, 2021, time.June, 15, 12, 30, 45, 600000)
	// Shifting by non-calendar units and back returns the original
	// instant exactly.
	s := zulu.Shift{Weeks: 3, Days: -2, Hours: 7, Minutes: 11, Seconds: 13, Microseconds: 17}
	if got, want := v.Shift(s).Shift(s.Neg()), v; !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestShiftZoneOverride(t *testing.T) {
	v := mustNew(t, 2021, time.June, 15, 10, 0, 0, 0)
	shifted := v.Shift(zulu.Shift{Hours: 2, Zone: time.FixedZone("+02:00", 2*3600)})
	if got, want := shifted.ISOFormat(), "2021-06-15T14:00:00+02:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := shifted.UTC().ISOFormat(), "2021-06-15T12:00:00+00:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestShiftImmutability(t *testing.T) {
	v := mustNew(t, 2021, time.June, 15, 10, 0, 0, 0)
	v.Shift(zulu.Shift{Years: 1, Months: 2, Days: 3})
	if got, want := v.ISOFormat(), "2021-06-15T10:00:00+00:00"; got != want {
		t.Errorf("receiver was modified: got %v, want %v", got, want)
	}
}

func TestSubSymmetry(t *testing.T) {
	a := mustNew(t, 2021, time.June, 15, 10, 0, 0, 0)
	b := mustNew(t, 2021, time.June, 17, 13, 30, 0, 0)
	if got, want := a.Sub(b), -b.Sub(a); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := b.Sub(a).Duration(), 51*time.Hour+30*time.Minute; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAdd(t *testing.T) {
	a := mustNew(t, 2021, time.June, 15, 10, 0, 0, 0)
	b := a.Add(zulu.Delta(90 * time.Minute))
	if got, want := b.ISOFormat(), "2021-06-15T11:30:00+00:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := b.Sub(a), zulu.Delta(90*time.Minute); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
