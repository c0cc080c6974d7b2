/*
Package versort sorts "semantic-ish" version tags: real-world tag strings
that often bend strict SemVer (missing segments, informal prerelease
suffixes, a trailing ordinal letter).

The package is transport-agnostic: it operates purely on a slice of tag
strings and returns the same strings reordered, byte-for-byte unmodified.
Typical flow:

 1. Collect raw tag lines elsewhere (stdin, file, registry listing).
 2. Call Sort with the desired Options.
 3. Print or consume the resulting list.

Ordering notes:
  - A leading "v"/"V" is accepted on input.
  - Shorthand releases compare zero-padded: "1.2" and "1.2.0" are equal,
    and equal tags keep their original input order (the sort is stable).
  - A release outranks any prerelease of the same numbers:
    "1.0.0-rc.1" < "1.0.0".
  - Prerelease identifiers compare SemVer-style: numeric identifiers rank
    below alphanumeric ones, numeric by value, alphanumeric by byte.
  - Build metadata ("+...") is carried but never compared.
  - With Options.Counter, a single letter glued to the last digit acts as
    a minor ordinal: "1.0" < "1.0a" < "1.0b" < "1.1".

Failure policy: by default the first unparsable line aborts the whole sort
with an *UnparsableError naming the line; with Options.IgnoreUnparsable
such lines are silently dropped instead.

Usage example:

	raw := []string{"1.10.0", "v1.2.3", "1.2", "1.0.0", "1.0.0-rc.1"}

	out, err := versort.Sort(raw, versort.Options{})
	if err != nil {
		// err identifies the offending line
	}

	fmt.Println(out) // [1.0.0-rc.1 1.0.0 1.2 v1.2.3 1.10.0]
*/
package versort
