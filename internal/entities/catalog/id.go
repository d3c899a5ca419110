package catalog

import "regexp"

var (
	compoundIDPattern = regexp.MustCompile(`^([-_a-z0-9]+):([-_a-z0-9]+)$`)
	bareIDPattern     = regexp.MustCompile(`^[-_a-z0-9]+$`)
)

// CompoundID addresses one entity within a guild's combined catalog:
// the source (a pack id or the reserved anilist source) plus the
// entity's id local to that source.
type CompoundID struct {
	Source string
	Local  string
}

// String returns the wire form "source:local".
func (id CompoundID) String() string {
	return id.Source + ":" + id.Local
}

// ParseID parses a compound id literal. A bare local id is only valid
// when defaultSource is non-empty (the declaring pack of the entity the
// reference appears in). Malformed literals report ok=false; callers
// drop them rather than erroring.
func ParseID(literal, defaultSource string) (CompoundID, bool) {
	if m := compoundIDPattern.FindStringSubmatch(literal); m != nil {
		return CompoundID{Source: m[1], Local: m[2]}, true
	}

	if defaultSource != "" && bareIDPattern.MatchString(literal) {
		return CompoundID{Source: defaultSource, Local: literal}, true
	}

	return CompoundID{}, false
}
