// Copyright 2026 the zulu authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zulu

import (
	"time"

	"github.com/hako/durafmt"

	"github.com/ThomasChiroux/zulu/parser"
)

// Delta is an exact elapsed time between two instants. It extends
// time.Duration with parsing of ISO8601 and human unit forms and with long
// form humanization.
type Delta time.Duration

// ParseDelta parses a duration in ISO8601 form ("P1DT2H") or human unit
// form ("1w2d3h", "90m"). Failures are reported as a parser.ParseError.
func ParseDelta(s string) (Delta, error) {
	d, err := parser.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	return Delta(d), nil
}

// Duration returns the delta as a time.Duration.
func (d Delta) Duration() time.Duration {
	return time.Duration(d)
}

// Seconds returns the delta as a floating point number of seconds.
func (d Delta) Seconds() float64 {
	return time.Duration(d).Seconds()
}

func (d Delta) String() string {
	return time.Duration(d).String()
}

// Humanize returns a long form phrase for the magnitude of the delta,
// e.g. "2 weeks 3 days".
func (d Delta) Humanize() string {
	v := time.Duration(d)
	if v < 0 {
		v = -v
	}
	return durafmt.Parse(v).String()
}
