// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import "github.com/pdiddy/bestiary/pkg/types"

// ResultSet is an ordered, immutable list of records sharing one
// provenance. Build it with LocalSet or RemoteSet; the zero value is an
// empty set with no provenance.
type ResultSet struct {
	provenance types.Provenance
	records    []types.AnimalRecord
}

// LocalSet wraps local records. The slice is copied.
func LocalSet(records []types.LocalRecord) ResultSet {
	out := make([]types.AnimalRecord, len(records))
	for i, r := range records {
		out[i] = r
	}
	return ResultSet{provenance: types.ProvenanceLocal, records: out}
}

// RemoteSet wraps remote records. The slice is copied.
func RemoteSet(records []types.RemoteRecord) ResultSet {
	out := make([]types.AnimalRecord, len(records))
	for i, r := range records {
		out[i] = r
	}
	return ResultSet{provenance: types.ProvenanceRemote, records: out}
}

// Provenance reports where every record in the set came from.
func (s ResultSet) Provenance() types.Provenance { return s.provenance }

// Len returns the number of records.
func (s ResultSet) Len() int { return len(s.records) }

// Names returns one display name per record, in set order. Duplicate names
// are kept; callers select by position.
func (s ResultSet) Names() []string {
	names := make([]string, len(s.records))
	for i, r := range s.records {
		names[i] = r.DisplayName()
	}
	return names
}

// At returns the record at position i.
func (s ResultSet) At(i int) (types.AnimalRecord, bool) {
	if i < 0 || i >= len(s.records) {
		return nil, false
	}
	return s.records[i], true
}

// Project returns the display model of the record at position i, projected
// under the set's provenance.
func (s ResultSet) Project(i int) (types.DisplayModel, bool) {
	rec, ok := s.At(i)
	if !ok {
		return types.DisplayModel{}, false
	}
	return ProjectAs(rec, s.provenance)
}
