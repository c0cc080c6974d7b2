package versort

import (
	"errors"
	"strconv"
	"strings"
)

// Parse failure reasons. Callers treat them all as one "unparsable line"
// condition; the distinction exists for diagnostics only.
var (
	// ErrEmptyInput marks an empty line.
	ErrEmptyInput = errors.New("empty input")

	// ErrNonNumericSegment marks a release segment that is empty, not
	// all decimal digits, or too large for uint64.
	ErrNonNumericSegment = errors.New("non-numeric release segment")

	// ErrMalformedCounter marks a tag with letters that does not match
	// the single-trailing-letter counter grammar while Options.Counter
	// is enabled.
	ErrMalformedCounter = errors.New("malformed counter suffix")
)

// Parse converts one trimmed line into a Version.
//
// Grammar, relaxed from strict SemVer:
//
//	[v|V] N(.N)* [x] [-prerelease] [+build]
//
// where the release accepts any number of numeric segments (shorthand
// "1" and "1.2" included) and the optional single-letter counter x is
// recognized only with opt.Counter and only when no "-" delimiter is
// present.
//
// Parse is a pure function of (s, opt) and never mutates its input.
func Parse(s string, opt Options) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyInput
	}

	if s[0] == 'v' || s[0] == 'V' {
		s = s[1:]
	}

	var v Version

	// Build metadata: everything after the first '+'. Kept as-is,
	// never validated, never compared.
	if i := strings.IndexByte(s, '+'); i >= 0 {
		v.Build = strings.Split(s[i+1:], ".")
		s = s[:i]
	}

	// Explicit prerelease tag: everything after the first '-'.
	var pre string
	hasPre := false
	if i := strings.IndexByte(s, '-'); i >= 0 {
		pre = s[i+1:]
		hasPre = true
		s = s[:i]
	}

	// Counter: a single trailing letter glued to a digit ("3.2a").
	// An explicit prerelease delimiter wins over counter extraction.
	counterEligible := opt.Counter && !hasPre
	if counterEligible {
		if n := len(s); n >= 2 && isAlpha(s[n-1]) && isDigit(s[n-2]) {
			v.Counter = s[n-1]
			v.HasCounter = true
			s = s[:n-1]
		}
	}

	rel, err := parseRelease(s, counterEligible)
	if err != nil {
		return Version{}, err
	}
	v.Release = rel

	if hasPre {
		v.Prerelease = parseIdentifiers(pre)
	}

	return v, nil
}

// parseRelease splits the release remainder on '.' and parses each
// segment as uint64. Overflow is a failure, not a clamp.
func parseRelease(s string, counterEligible bool) ([]uint64, error) {
	segs := strings.Split(s, ".")
	out := make([]uint64, 0, len(segs))

	for _, seg := range segs {
		if !allDigits(seg) {
			// In counter mode, leftover letters mean the tag asked
			// for a counter but missed the grammar.
			if counterEligible && containsAlpha(s) {
				return nil, ErrMalformedCounter
			}

			return nil, ErrNonNumericSegment
		}

		n, err := strconv.ParseUint(seg, 10, 64)
		if err != nil {
			// All-digit segment can only fail on overflow.
			return nil, ErrNonNumericSegment
		}

		out = append(out, n)
	}

	return out, nil
}

// parseIdentifiers splits a prerelease tag on '.' and classifies every
// identifier as numeric or alphanumeric. Both forms are kept verbatim.
func parseIdentifiers(s string) []Identifier {
	parts := strings.Split(s, ".")
	out := make([]Identifier, 0, len(parts))

	for _, p := range parts {
		id := Identifier{Str: p}
		if allDigits(p) {
			if n, err := strconv.ParseUint(p, 10, 64); err == nil {
				id.Num = n
				id.IsNum = true
			}
		}

		out = append(out, id)
	}

	return out
}
