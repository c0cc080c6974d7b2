package versort

import "strings"

// Compare returns -1, 0 or +1 ordering v against o.
//
// Precedence, highest rule first:
//  1. Release numbers element-wise, shorter side zero-padded
//     ("1.2" == "1.2.0").
//  2. A release outranks any prerelease of the same numbers.
//  3. Prerelease identifiers left to right: numeric < alphanumeric,
//     numeric by value, alphanumeric by byte; a strict prefix ranks
//     lower.
//  4. A counter outranks the plain form: "1.0" < "1.0a" < "1.0b".
//  5. Build metadata never participates.
//
// The order is total; 0 means the caller decides ties (the sort engine
// falls back to input order).
func (v Version) Compare(o Version) int {
	n := len(v.Release)
	if len(o.Release) > n {
		n = len(o.Release)
	}
	for i := 0; i < n; i++ {
		var a, b uint64
		if i < len(v.Release) {
			a = v.Release[i]
		}
		if i < len(o.Release) {
			b = o.Release[i]
		}

		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}

	switch {
	case v.Prerelease == nil && o.Prerelease == nil:
		// fall through to counters

	case v.Prerelease == nil:
		return 1

	case o.Prerelease == nil:
		return -1

	default:
		if c := comparePrerelease(v.Prerelease, o.Prerelease); c != 0 {
			return c
		}
	}

	return compareCounter(v, o)
}

func comparePrerelease(a, b []Identifier) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareIdentifier(a[i], b[i]); c != 0 {
			return c
		}
	}

	// Strict prefix ranks lower: "alpha" < "alpha.1".
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

func compareIdentifier(a, b Identifier) int {
	switch {
	case a.IsNum && b.IsNum:
		if a.Num != b.Num {
			if a.Num < b.Num {
				return -1
			}
			return 1
		}
		return 0

	case a.IsNum:
		return -1

	case b.IsNum:
		return 1
	}

	return strings.Compare(a.Str, b.Str)
}

// compareCounter orders the counter extension: plain below countered,
// two counters by byte value. Without Options.Counter neither side ever
// has one and the result is 0.
func compareCounter(v, o Version) int {
	switch {
	case v.HasCounter && o.HasCounter:
		if v.Counter != o.Counter {
			if v.Counter < o.Counter {
				return -1
			}
			return 1
		}
		return 0

	case v.HasCounter:
		return 1

	case o.HasCounter:
		return -1
	}

	return 0
}
