// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for bestiary: the two animal
// record variants, the display model produced from them, configuration, and
// the error taxonomy surfaced to users.
package types

// Provenance tags where a record or result set came from. It decides which
// projection rules apply.
type Provenance string

const (
	ProvenanceLocal  Provenance = "local"
	ProvenanceRemote Provenance = "remote"
)

// AnimalRecord is implemented only by LocalRecord and RemoteRecord.
type AnimalRecord interface {
	// DisplayName is the name shown in result lists.
	DisplayName() string
	// Provenance reports which variant the record is.
	Provenance() Provenance

	animalRecord()
}

// LocalRecord is one entry of the bundled dataset. Every field is a plain
// string; Image is a path the display layer may fail to open.
type LocalRecord struct {
	Name               string `json:"name" yaml:"name"`
	ScientificName     string `json:"scientific_name" yaml:"scientific_name"`
	Type               string `json:"type" yaml:"type"`
	Region             string `json:"region" yaml:"region"`
	ConservationStatus string `json:"conservation_status" yaml:"conservation_status"`
	Habitat            string `json:"habitat" yaml:"habitat"`
	Description        string `json:"description" yaml:"description"`
	Image              string `json:"image" yaml:"image"`
}

func (r LocalRecord) DisplayName() string { return r.Name }
func (r LocalRecord) Provenance() Provenance { return ProvenanceLocal }
func (LocalRecord) animalRecord() {}

// RemoteRecord is one entry of the animals API response. Nested objects are
// pointers so an absent object stays distinguishable from an empty one.
type RemoteRecord struct {
	Name            string           `json:"name" yaml:"name"`
	Taxonomy        *Taxonomy        `json:"taxonomy,omitempty" yaml:"taxonomy,omitempty"`
	Characteristics *Characteristics `json:"characteristics,omitempty" yaml:"characteristics,omitempty"`
	Locations       []string         `json:"locations,omitempty" yaml:"locations,omitempty"`
}

func (r RemoteRecord) DisplayName() string { return r.Name }
func (r RemoteRecord) Provenance() Provenance { return ProvenanceRemote }
func (RemoteRecord) animalRecord() {}

// Taxonomy is the classification block of a remote record.
type Taxonomy struct {
	Kingdom        *string `json:"kingdom,omitempty" yaml:"kingdom,omitempty"`
	Phylum         *string `json:"phylum,omitempty" yaml:"phylum,omitempty"`
	Class          *string `json:"class,omitempty" yaml:"class,omitempty"`
	Order          *string `json:"order,omitempty" yaml:"order,omitempty"`
	Family         *string `json:"family,omitempty" yaml:"family,omitempty"`
	Genus          *string `json:"genus,omitempty" yaml:"genus,omitempty"`
	ScientificName *string `json:"scientific_name,omitempty" yaml:"scientific_name,omitempty"`
}

// Characteristics holds the descriptive block of a remote record. The API
// returns many more keys than bestiary displays; only the displayed ones are
// decoded.
type Characteristics struct {
	Group                  *string `json:"group,omitempty" yaml:"group,omitempty"`
	Diet                   *string `json:"diet,omitempty" yaml:"diet,omitempty"`
	Habitat                *string `json:"habitat,omitempty" yaml:"habitat,omitempty"`
	BiggestThreat          *string `json:"biggest_threat,omitempty" yaml:"biggest_threat,omitempty"`
	MostDistinctiveFeature *string `json:"most_distinctive_feature,omitempty" yaml:"most_distinctive_feature,omitempty"`
}

// StringPtr returns a pointer to s. Handy for building remote records in
// fixtures.
func StringPtr(s string) *string { return &s }
