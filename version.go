package versort

// Identifier is one dot-separated prerelease element, classified once at
// parse time. Numeric identifiers keep their parsed value in Num;
// alphanumeric ones compare by Str alone.
type Identifier struct {
	Str   string
	Num   uint64
	IsNum bool
}

// Version is the parsed form of one version tag.
//
// Release is never empty. Prerelease is nil when the tag had no explicit
// "-" delimiter. Build metadata is carried verbatim but never compared.
// Counter is meaningful only when HasCounter is true, which can happen
// only with Options.Counter enabled.
type Version struct {
	Release    []uint64
	Prerelease []Identifier
	Build      []string
	Counter    byte
	HasCounter bool
}
