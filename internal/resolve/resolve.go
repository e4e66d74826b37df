// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve decides where a name lookup is answered from and turns
// the chosen records into display models.
//
// A lookup is answered locally whenever the local dataset has a name match
// (or the query is blank). Only a miss falls through to the remote source.
// Every ResultSet carries exactly one provenance, and projection is chosen
// by the record variant, never by a separately stored flag.
package resolve

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/pdiddy/bestiary/pkg/types"
)

// RemoteSource looks names up in the remote API. An empty slice with a nil
// error means the source knows no such animal.
type RemoteSource interface {
	Search(ctx context.Context, query string) ([]types.RemoteRecord, error)
}

// RemoteFetch signals that the local dataset had no match and the normalized
// query must be looked up remotely.
type RemoteFetch struct {
	Query string
}

// Outcome is the result of Resolve. When Fetch is nil, Set holds the local
// answer; otherwise Set is empty and the caller must call SearchRemote.
type Outcome struct {
	Set   ResultSet
	Fetch *RemoteFetch
}

// NeedsRemote reports whether the local dataset could not answer.
func (o Outcome) NeedsRemote() bool { return o.Fetch != nil }

// Normalize trims surrounding whitespace and case-folds the query. The
// result is only used for comparison.
func Normalize(query string) string {
	return cases.Fold().String(strings.TrimSpace(query))
}

// Resolve answers query from local if it can. A blank query lists every
// local record; otherwise the local records whose name contains the query
// (case-insensitively) are returned in dataset order. No match yields a
// RemoteFetch carrying the normalized query.
func Resolve(query string, local []types.LocalRecord) Outcome {
	q := Normalize(query)
	if q == "" {
		return Outcome{Set: LocalSet(local)}
	}

	fold := cases.Fold()
	var matches []types.LocalRecord
	for _, r := range local {
		if strings.Contains(fold.String(r.Name), q) {
			matches = append(matches, r)
		}
	}
	if len(matches) > 0 {
		return Outcome{Set: LocalSet(matches)}
	}
	return Outcome{Fetch: &RemoteFetch{Query: q}}
}

// SearchRemote looks query up in src. Errors from src (*types.ConfigError,
// *types.NetworkError) are returned unchanged so callers can tell them
// apart. A successful lookup with no records returns types.ErrNoResults.
func SearchRemote(ctx context.Context, src RemoteSource, query string) (ResultSet, error) {
	if src == nil {
		return ResultSet{}, &types.ConfigError{Setting: "remote source", Reason: "no remote source configured"}
	}
	records, err := src.Search(ctx, query)
	if err != nil {
		return ResultSet{}, err
	}
	if len(records) == 0 {
		return ResultSet{}, fmt.Errorf("%q: %w", query, types.ErrNoResults)
	}
	return RemoteSet(records), nil
}
