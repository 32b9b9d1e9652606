// Copyright 2026 the zulu authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zulu

import "time"

var (
	dayOfYear       []int // per month cumulative days in year so [0, 31, 59 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year [0, 31, 60 etc]
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// IsLeap returns true if the given year is a leap year in the proleptic
// Gregorian calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(year int, month time.Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

func daysInMonthForYear(year int) []int {
	if IsLeap(year) {
		return daysInMonthLeap
	}
	return daysInMonth
}

// Representable year range of the proleptic Gregorian calendar used here.
const (
	minYear = 1
	maxYear = 9999
)

// maxOrdinal is the proleptic Gregorian ordinal of Dec 31 9999.
const maxOrdinal = 3652059

func validateFields(year int, month time.Month, day, hour, minute, second, microsecond int) error {
	if year < minYear || year > maxYear {
		return &InvalidFieldError{Field: "year", Value: year, Min: minYear, Max: maxYear}
	}
	if month < time.January || month > time.December {
		return &InvalidFieldError{Field: "month", Value: int(month), Min: 1, Max: 12}
	}
	if dim := DaysInMonth(year, month); day < 1 || day > dim {
		return &InvalidFieldError{Field: "day", Value: day, Min: 1, Max: dim}
	}
	if hour < 0 || hour > 23 {
		return &InvalidFieldError{Field: "hour", Value: hour, Min: 0, Max: 23}
	}
	if minute < 0 || minute > 59 {
		return &InvalidFieldError{Field: "minute", Value: minute, Min: 0, Max: 59}
	}
	if second < 0 || second > 59 {
		return &InvalidFieldError{Field: "second", Value: second, Min: 0, Max: 59}
	}
	if microsecond < 0 || microsecond > 999999 {
		return &InvalidFieldError{Field: "microsecond", Value: microsecond, Min: 0, Max: 999999}
	}
	return nil
}

// daysBeforeYear returns the number of days between Jan 1 of year 1 and
// Jan 1 of the given year.
func daysBeforeYear(year int) int {
	y := year - 1
	return 365*y + y/4 - y/100 + y/400
}

// ordinalOf returns the proleptic Gregorian ordinal for the given date,
// where Jan 1 of year 1 has ordinal 1.
func ordinalOf(year int, month time.Month, day int) int {
	doy := dayOfYear
	if IsLeap(year) {
		doy = dayOfYearLeap
	}
	return daysBeforeYear(year) + doy[month-1] + day
}

// dateFromOrdinal is the inverse of ordinalOf.
func dateFromOrdinal(n int) (int, time.Month, int) {
	year := n/366 + 1
	for daysBeforeYear(year+1) < n {
		year++
	}
	day := n - daysBeforeYear(year)
	dim := daysInMonthForYear(year)
	for month := 0; month < 12; month++ {
		if day <= dim[month] {
			return year, time.Month(month + 1), day
		}
		day -= dim[month]
	}
	panic("unreachable")
}
