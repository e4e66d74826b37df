// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/bestiary/internal/secrets"
	"github.com/pdiddy/bestiary/pkg/types"
)

// Level ranks a Notice for display.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "error"
	}
	return "info"
}

// Notice is a user-facing message about an interaction or startup step.
// Seq is the sequence number of the interaction it belongs to, zero for
// notices not tied to one.
type Notice struct {
	Level   Level
	Title   string
	Message string
	Seq     uint64
}

func (n Notice) String() string {
	return n.Title + ": " + n.Message
}

// SearchingNotice announces that query missed locally.
func SearchingNotice(query string) Notice {
	return Notice{
		Level:   LevelInfo,
		Title:   "Searching Online",
		Message: fmt.Sprintf("'%s' not in local data. Searching online...", capitalize(strings.TrimSpace(query))),
	}
}

// Notice returns the message to show for it, or false when there is
// nothing to say (resolved, still running, or stale).
func (it Interaction) Notice() (Notice, bool) {
	if it.Stale() {
		return Notice{}, false
	}
	switch it.State {
	case NotFound:
		return Notice{
			Level:   LevelInfo,
			Title:   "Not Found",
			Message: fmt.Sprintf("No results found for '%s' locally or online.", it.Normalized),
			Seq:     it.Seq,
		}, true
	case Errored:
		n := ErrorNotice(it.Err)
		n.Seq = it.Seq
		return n, true
	}
	return Notice{}, false
}

// ErrorNotice converts err into a Notice, keeping configuration problems
// apart from connectivity problems.
func ErrorNotice(err error) Notice {
	var cfgErr *types.ConfigError
	var netErr *types.NetworkError
	var loadErr *types.DataLoadError
	switch {
	case errors.As(err, &cfgErr):
		return Notice{
			Level: LevelError,
			Title: "API Key Error",
			Message: fmt.Sprintf("%s. Put your API key in .secrets/%s or set BESTIARY_REMOTE_API_KEY.",
				upperFirst(cfgErr.Reason), secrets.APIKeyFile),
		}
	case errors.As(err, &netErr):
		return Notice{
			Level:   LevelError,
			Title:   "Network Error",
			Message: fmt.Sprintf("Could not connect to the API: %v", netErr),
		}
	case errors.As(err, &loadErr):
		return DataLoadNotice(loadErr)
	default:
		return Notice{
			Level:   LevelError,
			Title:   "Error",
			Message: fmt.Sprintf("An unexpected error occurred: %v", err),
		}
	}
}

// DataLoadNotice describes a dataset that could not be loaded at startup.
func DataLoadNotice(err *types.DataLoadError) Notice {
	name := filepath.Base(err.Path)
	if err.Missing() {
		return Notice{
			Level:   LevelError,
			Title:   "Error",
			Message: fmt.Sprintf("%s not found! Please make sure the file is in the same directory.", name),
		}
	}
	return Notice{
		Level:   LevelError,
		Title:   "Error",
		Message: fmt.Sprintf("Error decoding %s. Please check the file format.", name),
	}
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	return upperFirst(strings.ToLower(s))
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
