// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by remote data sources.
package httputil

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/bestiary/pkg/types"
)

// DefaultTimeout applies when HTTPConfig.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// NewClient returns an http.Client whose timeout comes from cfg.
func NewClient(cfg types.HTTPConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// Do executes req once. Transport failures and non-2xx responses come back
// as *types.NetworkError; in the latter case the body is drained and
// closed before returning. Failed calls are never retried.
func Do(ctx context.Context, client *http.Client, req *http.Request) (*http.Response, error) {
	resp, err := client.Do(req.Clone(ctx))
	if err != nil {
		return nil, &types.NetworkError{URL: redact(req), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &types.NetworkError{URL: redact(req), StatusCode: resp.StatusCode}
	}
	return resp, nil
}

// redact drops the query string so queries never end up in error text twice.
func redact(req *http.Request) string {
	u := *req.URL
	u.RawQuery = ""
	return u.String()
}
