// Copyright 2026 the zulu authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zulu

import (
	"fmt"
	"strconv"
)

// MarshalText implements encoding.TextMarshaler using the canonical
// ISO8601 form.
func (dt DateTime) MarshalText() ([]byte, error) {
	return []byte(dt.ISOFormat()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; the input must be a
// strict ISO8601 string.
func (dt *DateTime) UnmarshalText(data []byte) error {
	v, err := ParseISO(string(data))
	if err != nil {
		return err
	}
	*dt = v
	return nil
}

// MarshalJSON implements json.Marshaler as an ISO8601 string.
func (dt DateTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(dt.ISOFormat())), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (dt *DateTime) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("datetime must be a JSON string: %w", err)
	}
	return dt.UnmarshalText([]byte(s))
}
