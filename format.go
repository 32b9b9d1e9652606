// Copyright 2026 the zulu authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zulu

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/goodsign/monday"
	"github.com/leekchan/timeutil"
	"golang.org/x/text/language"

	"github.com/ThomasChiroux/zulu/parser"
)

// ISOFormat returns the canonical ISO8601 rendering of the value in its
// display zone: fixed width fields, a numeric offset suffix, and exactly
// six fractional digits when the microsecond field is nonzero, none when
// it is zero.
func (dt DateTime) ISOFormat() string {
	local := dt.Time()
	layout := "2006-01-02T15:04:05-07:00"
	if local.Nanosecond() != 0 {
		layout = "2006-01-02T15:04:05.000000-07:00"
	}
	return local.Format(layout)
}

func (dt DateTime) String() string {
	return dt.ISOFormat()
}

// Format renders the value in its display zone. An empty pattern yields
// ISOFormat. Patterns containing '%' are strftime directives; anything
// else is a date field pattern such as "EEEE dd MMMM YYYY", rendered
// locale aware. Unknown tokens in either syntax are reported as a
// parser.FormatError.
func (dt DateTime) Format(pattern, locale string) (string, error) {
	if pattern == "" {
		return dt.ISOFormat(), nil
	}
	local := dt.Time()
	if strings.ContainsRune(pattern, '%') {
		if err := parser.ValidateStrftime(pattern); err != nil {
			return "", err
		}
		return timeutil.Strftime(&local, pattern), nil
	}
	layout, err := parser.LayoutForPattern(pattern)
	if err != nil {
		return "", err
	}
	return monday.Format(local, layout, localeFor(locale)), nil
}

// Humanize returns a relative time phrase for the value against a
// reference instant, e.g. "3 hours ago" or "2 days from now", using the
// largest applicable unit. The relative time collaborator ships English
// labels only, so the locale currently selects English regardless.
func (dt DateTime) Humanize(ref DateTime, locale string) string {
	return humanize.RelTime(dt.Time(), ref.Time(), "ago", "from now")
}

var (
	mondayLocales []monday.Locale
	localeTags    []language.Tag
	localeMatcher language.Matcher
)

func init() {
	add := func(ml monday.Locale) {
		tag, err := language.Parse(strings.ReplaceAll(string(ml), "_", "-"))
		if err != nil {
			return
		}
		mondayLocales = append(mondayLocales, ml)
		localeTags = append(localeTags, tag)
	}
	add(monday.LocaleEnUS)
	for _, ml := range monday.ListLocales() {
		if ml == monday.LocaleEnUS {
			continue
		}
		add(ml)
	}
	localeMatcher = language.NewMatcher(localeTags)
}

// localeFor maps a locale identifier such as "fr_FR" or "de" to the
// closest supported rendering locale; unresolvable identifiers fall back
// to en_US.
func localeFor(locale string) monday.Locale {
	if locale == "" {
		return monday.LocaleEnUS
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return monday.LocaleEnUS
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return monday.LocaleEnUS
	}
	return mondayLocales[idx]
}
