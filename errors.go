// Copyright 2026 the zulu authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zulu

import "fmt"

// InvalidFieldError describes a calendar field that is outside its valid
// range at construction time. The valid range for the day field depends on
// the month and year being constructed.
type InvalidFieldError struct {
	Field    string
	Value    int
	Min, Max int
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s: %d is not in the range %d..%d", e.Field, e.Value, e.Min, e.Max)
}

// AmbiguousTimeError indicates that a naive wall clock reading was used
// where an instant is required, without an explicit zone or an explicit
// assumption that the reading is UTC.
type AmbiguousTimeError struct {
	Naive Naive
}

func (e *AmbiguousTimeError) Error() string {
	return fmt.Sprintf("ambiguous naive time %s: no zone given and UTC not assumed", e.Naive)
}

// NaiveComparisonError indicates a comparison between a normalized DateTime
// and a naive wall clock reading. Resolve the naive side with Naive.UTC or
// Naive.In first.
type NaiveComparisonError struct {
	Naive Naive
}

func (e *NaiveComparisonError) Error() string {
	return fmt.Sprintf("cannot compare instant against naive time %s: resolve it to a zone first", e.Naive)
}
