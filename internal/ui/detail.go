// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ui

import (
	"os"
	"strings"

	"github.com/pdiddy/bestiary/pkg/types"
)

const (
	imageMissing = "Image not found"
	imageRemote  = "Image Not Available (Online API Result)"
)

// StatFunc checks that an image path can be opened. Tests swap in a fake.
type StatFunc func(path string) error

func statFile(path string) error {
	_, err := os.Stat(path)
	return err
}

// ImageLine describes the image of m. A missing or unreadable local image
// is not an error; it is reported as "Image not found".
func ImageLine(m types.DisplayModel, stat StatFunc) string {
	if m.Provenance == types.ProvenanceRemote {
		return imageRemote
	}
	if m.Image == "" {
		return imageMissing
	}
	if stat == nil {
		stat = statFile
	}
	if err := stat(m.Image); err != nil {
		return imageMissing
	}
	return "Image: " + m.Image
}

// RenderDetail lays out m as plain text, one labeled line per field in
// layout order.
func RenderDetail(m types.DisplayModel, stat StatFunc) string {
	var b strings.Builder
	b.WriteString(m.Name)
	b.WriteString("\n")
	b.WriteString(ImageLine(m, stat))
	b.WriteString("\n\n")
	for _, f := range m.Fields {
		b.WriteString(f.Label)
		b.WriteString(": ")
		b.WriteString(f.Value)
		b.WriteString("\n")
	}
	return b.String()
}
