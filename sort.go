package versort

import (
	"fmt"
	"sort"
)

// UnparsableError reports the first line that failed to parse when
// Options.IgnoreUnparsable is off. Line is 1-based in the input slice;
// Text is the offending line verbatim.
type UnparsableError struct {
	Reason error
	Text   string
	Line   int
}

func (e *UnparsableError) Error() string {
	return fmt.Sprintf("line %d: cannot parse %q: %v", e.Line, e.Text, e.Reason)
}

func (e *UnparsableError) Unwrap() error { return e.Reason }

// rec is an internal record pairing a raw input line with its parsed
// version for the duration of the sort.
type rec struct {
	raw string
	ver Version
}

// Sort orders version tags ascending (or descending with opt.Reverse)
// and returns the same strings, unmodified, in the new order.
//
// Every line is parsed before any comparison happens. By default the
// first unparsable line aborts the run with an *UnparsableError and no
// output; with opt.IgnoreUnparsable such lines are dropped silently.
// The sort is stable: tags the comparator reports equal keep their
// original relative input order, in both directions.
func Sort(in []string, opt Options) ([]string, error) {
	rs, err := parseAll(in, opt)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(rs, func(i, j int) bool {
		c := rs[i].ver.Compare(rs[j].ver)
		if opt.Reverse {
			return c > 0
		}

		return c < 0
	})

	// Equal tags are adjacent after the stable sort, first occurrence
	// first, so dedup keeps the earliest input line of each run.
	if opt.Unique {
		rs = dedupe(rs)
	}

	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.raw
	}

	return capStrings(out, opt.Limit), nil
}

// parseAll parses every line up front, preserving input order. It is the
// only place the unparsable-line policy is applied.
func parseAll(in []string, opt Options) ([]rec, error) {
	rs := make([]rec, 0, len(in))

	for idx, s := range in {
		v, err := Parse(s, opt)
		if err != nil {
			if opt.IgnoreUnparsable {
				continue
			}

			return nil, &UnparsableError{Reason: err, Text: s, Line: idx + 1}
		}

		rs = append(rs, rec{raw: s, ver: v})
	}

	return rs, nil
}

// dedupe collapses adjacent comparator-equal records in place.
func dedupe(rs []rec) []rec {
	out := rs[:0]
	for _, r := range rs {
		if len(out) > 0 && out[len(out)-1].ver.Compare(r.ver) == 0 {
			continue
		}

		out = append(out, r)
	}

	return out
}
