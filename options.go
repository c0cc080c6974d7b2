package versort

// Options configures parsing and sorting behavior. The zero value sorts
// ascending, fails on the first unparsable line, and treats a trailing
// letter as a plain parse error.
//
// Options is passed by value into Parse and Sort; parsing stays a pure
// function of (text, options).
type Options struct {
	// IgnoreUnparsable drops lines that fail to parse instead of
	// aborting the whole run on the first one.
	IgnoreUnparsable bool

	// Counter enables the trailing-letter counter extension: a single
	// ASCII letter glued directly to the last release digit ("3.2a")
	// is detached and ordered after the plain release
	// ("3.2" < "3.2a" < "3.2b"). An explicit "-prerelease" delimiter
	// on the same line wins; no counter is extracted then.
	Counter bool

	// Unique collapses tags that compare equal (e.g. "1.2" vs "1.2.0"),
	// keeping the first occurrence in input order.
	Unique bool

	// Reverse emits descending order. Tags that compare equal still
	// keep their original input order.
	Reverse bool

	// Limit caps the number of output lines (<=0 = unlimited).
	Limit int
}
