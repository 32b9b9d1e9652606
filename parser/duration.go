// Copyright 2026 the zulu authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/errors"
	str2duration "github.com/xhit/go-str2duration/v2"
)

var ErrInvalidISO8601Duration = errors.New("invalid ISO8601 duration")

func consumeN(dur string) (float64, byte, int, error) {
	for i := range dur {
		c := dur[i]
		if (c >= '0' && c <= '9') || c == '.' {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D', 'H', 'S':
			n, err := strconv.ParseFloat(dur[:i], 64)
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", dur[:i], dur, ErrInvalidISO8601Duration)
			}
			return n, c, i + 1, nil
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or duration designator: %s: %w", dur, ErrInvalidISO8601Duration)
}

// ParseISO8601Duration parses a duration string in the ISO8601 format
// [-]PnYnMnWnDTnHnMnS. Years, months and weeks are reduced to elapsed time
// using a 365 day year, with a month as one twelfth of that.
func ParseISO8601Duration(dur string) (time.Duration, error) {
	nl := len(dur)
	hasP, hasNP := (nl > 0 && dur[0] == 'P'), (nl > 1 && dur[0] == '-' && dur[1] == 'P')
	if !hasP && !hasNP {
		return 0, fmt.Errorf("duration must start with P or -P: %s: %w", dur, ErrInvalidISO8601Duration)
	}
	dur = dur[1:]
	if hasNP {
		dur = dur[1:]
	}

	var result time.Duration
	state := 0 // 0 = P, 1 = T
	for len(dur) > 0 {
		if dur[0] == 'T' {
			state = 1
			dur = dur[1:]
			continue
		}
		n, designator, idx, err := consumeN(dur)
		if err != nil {
			return 0, err
		}
		dur = dur[idx:]
		switch state {
		case 0:
			switch designator {
			case 'Y':
				result += time.Duration(float64(time.Hour) * 24 * 365 * n)
			case 'M':
				result += time.Duration((float64(time.Hour) * 24 * 365 * n) / 12)
			case 'W':
				result += time.Duration(float64(time.Hour) * 24 * 7 * n)
			case 'D':
				result += time.Duration(float64(time.Hour) * 24 * n)
			default:
				return 0, fmt.Errorf("invalid duration designator: %c: %w", designator, ErrInvalidISO8601Duration)
			}
		case 1:
			switch designator {
			case 'H':
				result += time.Duration(float64(time.Hour) * n)
			case 'M':
				result += time.Duration(float64(time.Minute) * n)
			case 'S':
				result += time.Duration(float64(time.Second) * n)
			default:
				return 0, fmt.Errorf("invalid duration designator: %c: %w", designator, ErrInvalidISO8601Duration)
			}
		}
	}
	if hasNP {
		result = -result
	}
	return result, nil
}

var durationFormats = []string{"ISO8601", "units"}

// ParseDuration parses a duration in either ISO8601 form ("P1DT2H") or
// human unit form ("1w2d3h", "90m", "1.5h"). It returns a ParseError when
// neither form matches.
func ParseDuration(s string) (time.Duration, error) {
	errs := &errors.M{}
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "P") || strings.HasPrefix(trimmed, "-P") {
		d, err := ParseISO8601Duration(trimmed)
		if err == nil {
			return d, nil
		}
		errs.Append(fmt.Errorf("ISO8601: %w", err))
	}
	d, err := str2duration.ParseDuration(trimmed)
	if err == nil {
		return d, nil
	}
	errs.Append(fmt.Errorf("units: %w", err))
	return 0, &ParseError{Input: s, Formats: durationFormats, Err: errs.Err()}
}
