// Copyright 2026 the zulu authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package parser_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ThomasChiroux/zulu/parser"
)

func TestParseISO8601(t *testing.T) {
	for i, tc := range []struct {
		input  string
		output time.Time
	}{
		{"2021-06-15T12:00:00Z", time.Date(2021, 6, 15, 12, 0, 0, 0, time.UTC)},
		{"2021-06-15T12:00:00+00:00", time.Date(2021, 6, 15, 12, 0, 0, 0, time.UTC)},
		{"2021-06-15T12:00:00.123456Z", time.Date(2021, 6, 15, 12, 0, 0, 123456000, time.UTC)},
		{"2021-06-15T12:00:00+02:00", time.Date(2021, 6, 15, 10, 0, 0, 0, time.UTC)},
		{"2021-06-15", time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)},
	} {
		got, err := parser.ParseISO8601(tc.input)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if want := tc.output; !got.Equal(want) {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
	}
}

func TestParseISO8601Invalid(t *testing.T) {
	for i, input := range []string{"", "not a date", "2021-13-01T00:00:00Z", "2021-02-30T00:00:00Z", "1623758400"} {
		_, err := parser.ParseISO8601(input)
		var perr *parser.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%v: got %v, want ParseError", i, err)
			continue
		}
		if got, want := perr.Input, input; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestParseRFC2822(t *testing.T) {
	for i, tc := range []struct {
		input  string
		output time.Time
	}{
		{"Tue, 15 Jun 2021 12:00:00 +0200", time.Date(2021, 6, 15, 10, 0, 0, 0, time.UTC)},
		{"Tue, 15 Jun 2021 12:00:00 GMT", time.Date(2021, 6, 15, 12, 0, 0, 0, time.UTC)},
		{"15 Jun 2021 12:00:00 +0000", time.Date(2021, 6, 15, 12, 0, 0, 0, time.UTC)},
		{"Tue, 15 Jun 2021 12:00 +0000", time.Date(2021, 6, 15, 12, 0, 0, 0, time.UTC)},
	} {
		got, err := parser.ParseRFC2822(tc.input)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if want := tc.output; !got.Equal(want) {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
	}
	if _, err := parser.ParseRFC2822("2021-06-15T12:00:00Z"); err == nil {
		t.Errorf("expected an error for a non RFC2822 input")
	}
}

func TestParseTimestamp(t *testing.T) {
	for i, tc := range []struct {
		input  string
		output time.Time
	}{
		{"1623758400", time.Date(2021, 6, 15, 12, 0, 0, 0, time.UTC)},
		{"1623758400.5", time.Date(2021, 6, 15, 12, 0, 0, 500000000, time.UTC)},
		{"0", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"-86400", time.Date(1969, 12, 31, 0, 0, 0, 0, time.UTC)},
	} {
		got, err := parser.Parse(tc.input, time.UTC, []string{parser.FormatTimestamp})
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if want := tc.output; !got.Equal(want) {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
	}
}

func TestParseFormatHints(t *testing.T) {
	// The first matching hint wins, so an ambiguous input follows the
	// hint order supplied by the caller.
	got, err := parser.Parse("02/03/2021", time.UTC, []string{"dd/MM/YYYY", "MM/dd/YYYY"})
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2021, 3, 2, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	got, err = parser.Parse("02/03/2021", time.UTC, []string{"MM/dd/YYYY", "dd/MM/YYYY"})
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2021, 2, 3, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseStrftime(t *testing.T) {
	got, err := parser.Parse("2021-06-15 12:00:00", time.UTC, []string{"%Y-%m-%d %H:%M:%S"})
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2021, 6, 15, 12, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseDefaultFormats(t *testing.T) {
	for i, tc := range []struct {
		input  string
		output time.Time
	}{
		{"2021-06-15T12:00:00Z", time.Date(2021, 6, 15, 12, 0, 0, 0, time.UTC)},
		{"Tue, 15 Jun 2021 12:00:00 +0000", time.Date(2021, 6, 15, 12, 0, 0, 0, time.UTC)},
		{"1623758400", time.Date(2021, 6, 15, 12, 0, 0, 0, time.UTC)},
	} {
		got, err := parser.Parse(tc.input, time.UTC, nil)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if want := tc.output; !got.Equal(want) {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
	}
}

func TestParseFreeform(t *testing.T) {
	got, err := parser.Parse("June 15, 2021", time.UTC, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseFailure(t *testing.T) {
	// Inputs with no date expression must fail, including ones the
	// natural language fallback would otherwise echo its base time for.
	for _, input := range []string{"not a date", "@@##"} {
		_, err := parser.Parse(input, time.UTC, nil)
		var perr *parser.ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("%v: got %v, want ParseError", input, err)
		}
		if got, want := perr.Input, input; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		want := []string{parser.FormatISO8601, parser.FormatRFC2822, parser.FormatTimestamp, "freeform", "natural"}
		if got := perr.Formats; len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if perr.Formats[i] != want[i] {
				t.Errorf("%v: got %v, want %v", i, perr.Formats[i], want[i])
			}
		}
	}
}

func TestParseNow(t *testing.T) {
	before := time.Now().Add(-time.Minute)
	got, err := parser.Parse("now", time.UTC, nil)
	if err != nil {
		t.Fatal(err)
	}
	after := time.Now().Add(time.Minute)
	if got.Before(before) || got.After(after) {
		t.Errorf("got %v, want a current instant", got)
	}
}
