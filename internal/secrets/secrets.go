// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys and credentials from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key name and the
// file contents (trimmed) are the value.
//
// Supported key files: api-ninjas-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// APIKeyFile is the secret file holding the animals API credential.
const APIKeyFile = "api-ninjas-api-key"

// LegacyAPIKeyEnv is the plain environment variable older setups export the
// credential under.
const LegacyAPIKeyEnv = "API_KEY"

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files are logged as warnings and skipped. A nil logger is
// treated as a no-op logger.
func Load(dir string, logger *zap.Logger) (map[string]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("could not read secret", zap.String("name", name), zap.Error(err))
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// APIKey picks the animals API credential. The secrets file wins, then the
// configured value (config file or BESTIARY_REMOTE_API_KEY), then the
// LegacyAPIKeyEnv variable. An empty result is returned as-is; the remote
// client decides whether it is usable.
func APIKey(loaded map[string]string, configured string) string {
	if v := loaded[APIKeyFile]; v != "" {
		return v
	}
	if v := strings.TrimSpace(configured); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv(LegacyAPIKeyEnv))
}
