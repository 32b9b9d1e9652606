// Copyright 2026 the zulu authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var fixedOffsetRe = regexp.MustCompile(`^([+-])(\d{2}):?(\d{2})$`)

// Location resolves a timezone identifier to a *time.Location. Accepted
// identifiers are "UTC" and "Z", "local" for the host timezone, fixed
// offsets of the form "+02:00" or "-0500", and any name resolvable by the
// host timezone database via time.LoadLocation. The empty string is not a
// valid identifier.
func Location(name string) (*time.Location, error) {
	switch name {
	case "":
		// LoadLocation would resolve "" to UTC; reject it instead.
		return nil, &UnknownTimeZoneError{Name: name}
	case "UTC", "utc", "Z":
		return time.UTC, nil
	case "local", "Local":
		return time.Local, nil
	}
	if m := fixedOffsetRe.FindStringSubmatch(name); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes, _ := strconv.Atoi(m[3])
		if hours > 23 || minutes > 59 {
			return nil, &UnknownTimeZoneError{Name: name}
		}
		offset := hours*3600 + minutes*60
		if m[1] == "-" {
			offset = -offset
		}
		return time.FixedZone(fmt.Sprintf("%s%02d:%02d", m[1], hours, minutes), offset), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, &UnknownTimeZoneError{Name: name}
	}
	return loc, nil
}
