// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrNoResults reports that a remote lookup succeeded but returned nothing.
// Together with an empty local match it means "not found anywhere".
var ErrNoResults = errors.New("no results found locally or online")

// ErrSuperseded marks an interaction whose remote response arrived after a
// newer query had started. Callers drop it.
var ErrSuperseded = errors.New("search superseded by a newer query")

// DataLoadError reports that the local dataset could not be read or parsed.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	if e.Missing() {
		return fmt.Sprintf("dataset %s not found", e.Path)
	}
	return fmt.Sprintf("loading dataset %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// Missing reports whether the dataset file was absent rather than malformed.
func (e *DataLoadError) Missing() bool {
	return errors.Is(e.Err, fs.ErrNotExist)
}

// ConfigError reports a missing or placeholder setting. It is never caused
// by the network.
type ConfigError struct {
	Setting string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error for %s: %s", e.Setting, e.Reason)
}

// NetworkError reports a transport failure (StatusCode 0) or a non-success
// HTTP response from the remote API.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("remote API returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("remote API request: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsDataLoad checks if an error is a DataLoadError.
func IsDataLoad(err error) bool {
	var target *DataLoadError
	return errors.As(err, &target)
}

// IsConfig checks if an error is a ConfigError.
func IsConfig(err error) bool {
	var target *ConfigError
	return errors.As(err, &target)
}

// IsNetwork checks if an error is a NetworkError.
func IsNetwork(err error) bool {
	var target *NetworkError
	return errors.As(err, &target)
}
