// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/bestiary/pkg/types"
)

const sampleJSON = `[
  {
    "name": "Lion",
    "scientific_name": "Panthera leo",
    "type": "Mammal",
    "region": "Africa",
    "conservation_status": "Vulnerable",
    "habitat": "Savanna",
    "description": "Large social cat.",
    "image": "images/lion.jpg"
  },
  {
    "name": "Bald Eagle",
    "scientific_name": "Haliaeetus leucocephalus",
    "type": "Bird",
    "region": "North America",
    "conservation_status": "Least Concern",
    "habitat": "Lakes and rivers",
    "description": "National bird of the United States.",
    "image": "images/eagle.jpg",
    "extra": "ignored"
  }
]`

const sampleYAML = `
- name: Axolotl
  scientific_name: Ambystoma mexicanum
  type: Amphibian
  region: Mexico
  conservation_status: Critically Endangered
  habitat: Lakes
  description: Neotenic salamander.
  image: images/axolotl.png
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		content   string
		wantNames []string
	}{
		{"json", "animals.json", sampleJSON, []string{"Lion", "Bald Eagle"}},
		{"yaml", "animals.yaml", sampleYAML, []string{"Axolotl"}},
		{"yml extension", "animals.yml", sampleYAML, []string{"Axolotl"}},
		{"unknown extension parsed as json", "animals.data", sampleJSON, []string{"Lion", "Bald Eagle"}},
		{"empty list", "animals.json", `[]`, []string{}},
		{"nameless rows skipped", "animals.json", `[{"name":"  "},{"name":"Okapi"}]`, []string{"Okapi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDataset(t, tt.file, tt.content)
			got, err := Load(path)
			require.NoError(t, err)

			names := make([]string, len(got))
			for i, r := range got {
				names[i] = r.Name
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestLoadFieldMapping(t *testing.T) {
	got, err := Load(writeDataset(t, "animals.json", sampleJSON))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, types.LocalRecord{
		Name:               "Lion",
		ScientificName:     "Panthera leo",
		Type:               "Mammal",
		Region:             "Africa",
		ConservationStatus: "Vulnerable",
		Habitat:            "Savanna",
		Description:        "Large social cat.",
		Image:              "images/lion.jpg",
	}, got[0])
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name        string
		path        func(t *testing.T) string
		wantMissing bool
	}{
		{
			name:        "missing file",
			path:        func(t *testing.T) string { return filepath.Join(t.TempDir(), "animals.json") },
			wantMissing: true,
		},
		{
			name: "malformed json",
			path: func(t *testing.T) string { return writeDataset(t, "animals.json", `[{"name": "Lion",`) },
		},
		{
			name: "object instead of list",
			path: func(t *testing.T) string { return writeDataset(t, "animals.json", `{"name": "Lion"}`) },
		},
		{
			name: "null document",
			path: func(t *testing.T) string { return writeDataset(t, "animals.json", `null`) },
		},
		{
			name: "malformed yaml",
			path: func(t *testing.T) string { return writeDataset(t, "animals.yaml", "- name: [unclosed") },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.path(t))
			require.Error(t, err)

			var loadErr *types.DataLoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, tt.wantMissing, loadErr.Missing())

			// Callers continue with an empty local set.
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestLoadOrEmptyLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	got, err := LoadOrEmpty(filepath.Join(t.TempDir(), "nope.json"), logger)
	require.Error(t, err)
	assert.True(t, types.IsDataLoad(err))
	assert.Empty(t, got)
	assert.Equal(t, 1, logs.FilterMessage("local dataset unavailable, continuing without local records").Len())

	got, err = LoadOrEmpty(writeDataset(t, "animals.json", `[{"name":""},{"name":"Lion"}]`), logger)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, logs.FilterMessage("skipped dataset rows without a name").Len())
}

func writeDataset(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
