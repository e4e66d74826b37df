// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// NotAvailable is rendered in place of any field the source record lacks.
const NotAvailable = "N/A"

// Field is one labeled line of a DisplayModel.
type Field struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// DisplayModel is the fixed-shape, display-ready view of one record. It is
// built fresh for every selection and owned by whoever asked for it.
type DisplayModel struct {
	Name       string     `json:"name" yaml:"name"`
	Provenance Provenance `json:"provenance" yaml:"provenance"`
	Fields     []Field    `json:"fields" yaml:"fields"`

	// Image is a local file path, empty when the record has none.
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
}

// Value returns the value of the field with the given label.
func (m DisplayModel) Value(label string) (string, bool) {
	for _, f := range m.Fields {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}

// Display labels, in layout order.
const (
	LabelScientificName     = "Scientific Name"
	LabelType               = "Type"
	LabelRegion             = "Region"
	LabelConservationStatus = "Conservation Status"
	LabelHabitat            = "Habitat"
	LabelDescription        = "Description"
	LabelLocation           = "Location"
	LabelDiet               = "Diet"
	LabelBiggestThreat      = "Biggest Threat"
	LabelDistinctiveFeature = "Distinctive Feature"
)

// LocalLayout and RemoteLayout list the labels every DisplayModel of that
// provenance carries, in order.
var (
	LocalLayout = []string{
		LabelScientificName, LabelType, LabelRegion,
		LabelConservationStatus, LabelHabitat, LabelDescription,
	}
	RemoteLayout = []string{
		LabelScientificName, LabelType, LabelLocation, LabelDiet,
		LabelHabitat, LabelBiggestThreat, LabelDistinctiveFeature,
	}
)
