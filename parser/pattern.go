// Copyright 2026 the zulu authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package parser

import "strings"

// Subset of the Unicode date field symbols
// (unicode.org/reports/tr35 Date Field Symbol Table) mapped to the
// equivalent reference layout of the time package. Text enclosed in single
// quotes is passed through as a literal.
var patternLayouts = map[string]string{
	"YYYY":   "2006",    // year with century
	"YY":     "06",      // year without century
	"MMMM":   "January", // month's full name
	"MMM":    "Jan",     // month's abbreviated name
	"MM":     "01",      // month padded
	"M":      "1",       // month not padded
	"DDD":    "002",     // day of the year padded
	"dd":     "02",      // day of the month padded
	"d":      "2",       // day of the month not padded
	"EEEE":   "Monday",  // weekday's full name
	"EEE":    "Mon",     // weekday's abbreviated name
	"EE":     "Mon",
	"E":      "Mon",
	"eee":    "Mon",
	"ee":     "Mon",
	"e":      "Mon",
	"HH":     "15", // hour-24 padded
	"H":      "15",
	"hh":     "03", // hour-12 padded
	"h":      "3",  // hour-12 not padded
	"mm":     "04", // minute padded
	"m":      "4",  // minute not padded
	"ss":     "05", // second padded
	"s":      "5",  // second not padded
	"SSSSSS": "000000", // fractional second digits, following a '.'
	"SSSSS":  "00000",
	"SSSS":   "0000",
	"SSS":    "000",
	"SS":     "00",
	"S":      "0",
	"a":      "PM",
	"ZZ":     "-07:00", // UTC offset with separator
	"Z":      "-0700",  // UTC offset without separator
}

func isAlpha(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// LayoutForPattern translates a date field pattern such as
// "YYYY-MM-dd HH:mm:ss" into a time package reference layout. Runs of
// alphabetic characters must match a known field symbol; anything else is
// copied through verbatim. A FormatError is returned for an unknown symbol.
func LayoutForPattern(pattern string) (string, error) {
	var out strings.Builder
	for i := 0; i < len(pattern); {
		c := pattern[i]
		if c == '\'' {
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				// '' outside a literal is a single quote.
				out.WriteByte('\'')
				i += 2
				continue
			}
			// Quoted literal; '' inside it is an escaped quote and
			// does not close the literal.
			j := i + 1
			for j < len(pattern) {
				if pattern[j] == '\'' {
					if j+1 < len(pattern) && pattern[j+1] == '\'' {
						out.WriteByte('\'')
						j += 2
						continue
					}
					break
				}
				out.WriteByte(pattern[j])
				j++
			}
			i = j + 1
			continue
		}
		if !isAlpha(c) {
			out.WriteByte(c)
			i++
			continue
		}
		j := i
		for j < len(pattern) && pattern[j] == c {
			j++
		}
		token := pattern[i:j]
		layout, ok := patternLayouts[token]
		if !ok {
			return "", &FormatError{Pattern: pattern, Token: token}
		}
		out.WriteString(layout)
		i = j
	}
	return out.String(), nil
}

// strftime directives understood by the strftime collaborators.
var strftimeDirectives = map[byte]bool{
	'a': true, 'A': true, 'b': true, 'B': true, 'c': true, 'C': true,
	'd': true, 'D': true, 'e': true, 'f': true, 'F': true, 'g': true,
	'G': true, 'h': true, 'H': true, 'I': true, 'j': true, 'm': true,
	'M': true, 'n': true, 'p': true, 'r': true, 'R': true, 's': true,
	'S': true, 't': true, 'T': true, 'u': true, 'U': true, 'V': true,
	'w': true, 'W': true, 'x': true, 'X': true, 'y': true, 'Y': true,
	'z': true, 'Z': true, '%': true,
}

// ValidateStrftime checks every % directive in a strftime pattern and
// returns a FormatError for the first unknown one.
func ValidateStrftime(pattern string) error {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			continue
		}
		if i+1 == len(pattern) {
			return &FormatError{Pattern: pattern, Token: "%"}
		}
		if !strftimeDirectives[pattern[i+1]] {
			return &FormatError{Pattern: pattern, Token: pattern[i : i+2]}
		}
		i++
	}
	return nil
}
