package filestamp

import (
	"path/filepath"
	"strings"
)

// Accept reports whether the record satisfies every predicate.
// All predicates read the same record, so a file is judged on one metadata snapshot.
func (c FilterCriteria) Accept(r FileRecord) bool {
	return c.MatchExtension(r.Path) && c.MatchSize(r.Size) && c.MatchCreated(r.Created)
}

// MatchExtension checks the case-sensitive suffix of the file name.
// An empty extension accepts every file.
func (c FilterCriteria) MatchExtension(path string) bool {
	if c.Extension == "" {
		return true
	}

	return strings.HasSuffix(filepath.Base(path), c.Extension)
}

// MatchSize checks the inclusive size range.
func (c FilterCriteria) MatchSize(size uint64) bool {
	return size >= c.SizeMin && size <= c.SizeMax
}

// MatchCreated checks the inclusive creation time range against a record timestamp.
func (c FilterCriteria) MatchCreated(created string) bool {
	if !c.CreatedAfter.IsZero() && created < FormatTime(c.CreatedAfter) {
		return false
	}

	if !c.CreatedBefore.IsZero() && created > FormatTime(c.CreatedBefore) {
		return false
	}

	return true
}
