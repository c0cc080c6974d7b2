package versort

// DefaultOptions returns the strict preset: ascending order, fail on the
// first unparsable line, no counter extension, no dedup, no limit.
// It is the zero Options value, named for call-site readability.
func DefaultOptions() Options {
	return Options{}
}

// Sorted sorts tags ascending with DefaultOptions.
// Equivalent to Sort(in, DefaultOptions()).
func Sorted(in []string) ([]string, error) {
	return Sort(in, DefaultOptions())
}

// Latest returns the highest version among the parsable tags, verbatim.
// Unparsable tags are skipped regardless of opt.IgnoreUnparsable; the
// second result is false when nothing parsed.
func Latest(in []string, opt Options) (string, bool) {
	opt.IgnoreUnparsable = true
	opt.Reverse = false
	opt.Unique = false
	opt.Limit = 0

	out, err := Sort(in, opt)
	if err != nil || len(out) == 0 {
		return "", false
	}

	return out[len(out)-1], true
}
