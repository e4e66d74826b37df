// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads the bundled local animal dataset. It is read once at
// startup; the records it returns are never modified afterwards.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bestiary/pkg/types"
)

// DefaultPath is where the dataset is looked for when none is configured.
const DefaultPath = "animals.json"

// Load reads the dataset at path. JSON and YAML are chosen by extension;
// anything else is parsed as JSON. On failure Load returns an empty,
// non-nil slice and a *types.DataLoadError so callers can continue with no
// local records.
func Load(path string) ([]types.LocalRecord, error) {
	records, _, err := load(path)
	return records, err
}

// LoadOrEmpty is Load with the failure and any skipped rows logged. The
// error is still returned so it can be shown to the user.
func LoadOrEmpty(path string, logger *zap.Logger) ([]types.LocalRecord, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	records, skipped, err := load(path)
	if err != nil {
		logger.Warn("local dataset unavailable, continuing without local records",
			zap.String("path", path), zap.Error(err))
		return records, err
	}
	if skipped > 0 {
		logger.Warn("skipped dataset rows without a name",
			zap.String("path", path), zap.Int("skipped", skipped))
	}
	logger.Debug("loaded local dataset", zap.String("path", path), zap.Int("records", len(records)))
	return records, nil
}

func load(path string) ([]types.LocalRecord, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return []types.LocalRecord{}, 0, &types.DataLoadError{Path: path, Err: err}
	}

	raw, err := decode(path, data)
	if err != nil {
		return []types.LocalRecord{}, 0, &types.DataLoadError{Path: path, Err: err}
	}

	records := make([]types.LocalRecord, 0, len(raw))
	skipped := 0
	for _, r := range raw {
		if strings.TrimSpace(r.Name) == "" {
			skipped++
			continue
		}
		records = append(records, r)
	}
	return records, skipped, nil
}

func decode(path string, data []byte) ([]types.LocalRecord, error) {
	var raw []types.LocalRecord
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	}
	if raw == nil {
		return nil, fmt.Errorf("dataset is empty or not a list of records")
	}
	return raw, nil
}
