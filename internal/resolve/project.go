// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"strings"

	"github.com/pdiddy/bestiary/pkg/types"
)

// Project maps rec to its fixed-shape display model. It is pure and total:
// every label of the provenance's layout is present, and anything the
// record lacks renders as types.NotAvailable. It does no I/O; the image
// path is handed through for the display layer to open.
func Project(rec types.AnimalRecord) types.DisplayModel {
	switch r := rec.(type) {
	case types.LocalRecord:
		return projectLocal(r)
	case *types.LocalRecord:
		if r != nil {
			return projectLocal(*r)
		}
	case types.RemoteRecord:
		return projectRemote(r)
	case *types.RemoteRecord:
		if r != nil {
			return projectRemote(*r)
		}
	}
	return types.DisplayModel{Name: types.NotAvailable}
}

// ProjectAs projects rec under the provenance it was listed with. The
// record variant decides the layout; ok is false when prov names the other
// variant, so callers can refuse a mislabeled record instead of showing it.
func ProjectAs(rec types.AnimalRecord, prov types.Provenance) (m types.DisplayModel, ok bool) {
	m = Project(rec)
	return m, rec != nil && m.Provenance == prov
}

func projectLocal(r types.LocalRecord) types.DisplayModel {
	return types.DisplayModel{
		Name:       orNA(r.Name),
		Provenance: types.ProvenanceLocal,
		Fields: []types.Field{
			{Label: types.LabelScientificName, Value: orNA(r.ScientificName)},
			{Label: types.LabelType, Value: orNA(r.Type)},
			{Label: types.LabelRegion, Value: orNA(r.Region)},
			{Label: types.LabelConservationStatus, Value: orNA(r.ConservationStatus)},
			{Label: types.LabelHabitat, Value: orNA(r.Habitat)},
			{Label: types.LabelDescription, Value: orNA(r.Description)},
		},
		Image: strings.TrimSpace(r.Image),
	}
}

func projectRemote(r types.RemoteRecord) types.DisplayModel {
	var tax types.Taxonomy
	if r.Taxonomy != nil {
		tax = *r.Taxonomy
	}
	var ch types.Characteristics
	if r.Characteristics != nil {
		ch = *r.Characteristics
	}

	return types.DisplayModel{
		Name:       orNA(r.Name),
		Provenance: types.ProvenanceRemote,
		Fields: []types.Field{
			{Label: types.LabelScientificName, Value: deref(tax.ScientificName)},
			{Label: types.LabelType, Value: deref(ch.Group)},
			{Label: types.LabelLocation, Value: joinLocations(r.Locations)},
			{Label: types.LabelDiet, Value: deref(ch.Diet)},
			{Label: types.LabelHabitat, Value: deref(ch.Habitat)},
			{Label: types.LabelBiggestThreat, Value: deref(ch.BiggestThreat)},
			{Label: types.LabelDistinctiveFeature, Value: deref(ch.MostDistinctiveFeature)},
		},
	}
}

func joinLocations(locs []string) string {
	if len(locs) == 0 {
		return types.NotAvailable
	}
	return strings.Join(locs, ", ")
}

func deref(s *string) string {
	if s == nil {
		return types.NotAvailable
	}
	return orNA(*s)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return types.NotAvailable
	}
	return s
}
