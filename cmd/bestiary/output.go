// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bestiary/internal/ui"
	"github.com/pdiddy/bestiary/pkg/types"
)

type outputFormat int

const (
	formatText outputFormat = iota
	formatJSON
	formatYAML
)

// searchOutput is what search and show print.
type searchOutput struct {
	Query      string              `json:"query" yaml:"query"`
	Provenance types.Provenance    `json:"provenance" yaml:"provenance"`
	Names      []string            `json:"names" yaml:"names"`
	Selected   *types.DisplayModel `json:"selected,omitempty" yaml:"selected,omitempty"`
}

func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "output results as JSON")
	cmd.Flags().Bool("yaml", false, "output results as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

func formatFromFlags(cmd *cobra.Command) outputFormat {
	if ok, _ := cmd.Flags().GetBool("json"); ok {
		return formatJSON
	}
	if ok, _ := cmd.Flags().GetBool("yaml"); ok {
		return formatYAML
	}
	return formatText
}

func writeOutput(w io.Writer, format outputFormat, out searchOutput, stat ui.StatFunc) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	}

	if out.Selected != nil {
		_, err := io.WriteString(w, ui.RenderDetail(*out.Selected, stat))
		return err
	}
	if _, err := fmt.Fprintf(w, "%d result(s) (%s)\n", len(out.Names), out.Provenance); err != nil {
		return err
	}
	for i, name := range out.Names {
		if _, err := fmt.Fprintf(w, "%3d. %s\n", i+1, name); err != nil {
			return err
		}
	}
	return nil
}
