// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/pdiddy/bestiary/internal/dataset"
	"github.com/pdiddy/bestiary/internal/remote"
	"github.com/pdiddy/bestiary/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// stubSource answers every query with the same records or error.
type stubSource struct {
	records []types.RemoteRecord
	err     error
	calls   int32
}

func (s *stubSource) Search(_ context.Context, _ string) ([]types.RemoteRecord, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.records, s.err
}

// gatedSource blocks the first query until released, ignoring cancellation,
// so a late response can be observed arriving after a newer query.
type gatedSource struct {
	started chan string
	release chan struct{}
	once    sync.Once
}

func newGatedSource() *gatedSource {
	return &gatedSource{started: make(chan string, 4), release: make(chan struct{})}
}

func (g *gatedSource) Search(_ context.Context, query string) ([]types.RemoteRecord, error) {
	g.started <- query
	first := false
	g.once.Do(func() { first = true })
	if first {
		<-g.release
	}
	return []types.RemoteRecord{{Name: "Result for " + query}}, nil
}

var lions = []types.LocalRecord{
	{Name: "Lion", ScientificName: "Panthera leo"},
	{Name: "Sea Lion"},
}

func TestSearchLocalResolution(t *testing.T) {
	src := &stubSource{}
	s := New(lions, src)

	it := s.Search(context.Background(), "lion")
	assert.Equal(t, Resolved, it.State)
	assert.Equal(t, []State{Idle, LocalLookup, Resolved}, it.Trail)
	assert.Equal(t, types.ProvenanceLocal, it.Set.Provenance())
	assert.Equal(t, []string{"Lion", "Sea Lion"}, it.Set.Names())
	assert.Equal(t, int32(0), atomic.LoadInt32(&src.calls), "local hit never goes online")

	_, hasNotice := it.Notice()
	assert.False(t, hasNotice)
}

func TestSearchBlankListsEverything(t *testing.T) {
	s := New(lions, &stubSource{})
	it := s.Search(context.Background(), "   ")
	assert.Equal(t, Resolved, it.State)
	assert.Equal(t, 2, it.Set.Len())
}

func TestSearchRemoteResolution(t *testing.T) {
	src := &stubSource{records: []types.RemoteRecord{{Name: "Zebra"}}}
	var notices []Notice
	s := New(lions, src, WithRemoteNotice(func(n Notice) { notices = append(notices, n) }))

	it := s.Search(context.Background(), " ZEBRA ")
	assert.Equal(t, Resolved, it.State)
	assert.Equal(t, []State{Idle, LocalLookup, RemoteLookup, Resolved}, it.Trail)
	assert.Equal(t, types.ProvenanceRemote, it.Set.Provenance())
	assert.Equal(t, "zebra", it.Normalized)

	require.Len(t, notices, 1)
	assert.Equal(t, "Searching Online", notices[0].Title)
	assert.Equal(t, "'Zebra' not in local data. Searching online...", notices[0].Message)
	assert.Equal(t, it.Seq, notices[0].Seq, "notice carries the interaction it belongs to")
}

func TestNoticesCarrySequence(t *testing.T) {
	var searching []Notice
	s := New(lions, &stubSource{err: &types.ConfigError{Setting: "api key", Reason: "no API key configured"}},
		WithRemoteNotice(func(n Notice) { searching = append(searching, n) }))

	first := s.Search(context.Background(), "zebra")
	second := s.Search(context.Background(), "okapi")
	require.Len(t, searching, 2)
	assert.Equal(t, first.Seq, searching[0].Seq)
	assert.Equal(t, second.Seq, searching[1].Seq)
	assert.Greater(t, second.Seq, first.Seq)

	n, ok := second.Notice()
	require.True(t, ok)
	assert.Equal(t, "API Key Error", n.Title)
	assert.Equal(t, second.Seq, n.Seq)
}

// Scenario C at the interaction level.
func TestSearchNotFound(t *testing.T) {
	s := New(lions, &stubSource{records: []types.RemoteRecord{}})
	it := s.Search(context.Background(), "unicorn")

	assert.Equal(t, NotFound, it.State)
	assert.Zero(t, it.Set.Len())
	n, ok := it.Notice()
	require.True(t, ok)
	assert.Equal(t, "Not Found", n.Title)
	assert.Equal(t, "No results found for 'unicorn' locally or online.", n.Message)
}

// Scenario D: placeholder credential never reaches the network.
func TestSearchPlaceholderCredential(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()
	client := remote.NewClient(types.RemoteConfig{BaseURL: ts.URL, APIKey: "YOUR_API_KEY_HERE"},
		remote.WithHTTPClient(ts.Client()))

	s := New(lions, client)
	it := s.Search(context.Background(), "zebra")

	assert.Equal(t, Errored, it.State)
	assert.True(t, types.IsConfig(it.Err))
	assert.False(t, types.IsNetwork(it.Err))
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits), "no HTTP call is issued")

	n, ok := it.Notice()
	require.True(t, ok)
	assert.Equal(t, "API Key Error", n.Title)
	assert.Equal(t, LevelError, n.Level)
}

func TestSearchNetworkError(t *testing.T) {
	s := New(lions, &stubSource{err: &types.NetworkError{StatusCode: 503}})
	it := s.Search(context.Background(), "zebra")

	assert.Equal(t, Errored, it.State)
	n, ok := it.Notice()
	require.True(t, ok)
	assert.Equal(t, "Network Error", n.Title)
	assert.Contains(t, n.Message, "503")
}

func TestSearchNilSourceIsConfigError(t *testing.T) {
	s := New(nil, nil)
	it := s.Search(context.Background(), "zebra")
	assert.Equal(t, Errored, it.State)
	assert.True(t, types.IsConfig(it.Err))
}

// Scenario E: a malformed dataset leaves an empty local set, so every
// search falls through to remote.
func TestSearchWithMalformedDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animals.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "Lion",`), 0o644))

	local, err := dataset.Load(path)
	require.Error(t, err)
	var loadErr *types.DataLoadError
	require.ErrorAs(t, err, &loadErr)

	n := DataLoadNotice(loadErr)
	assert.Equal(t, "Error decoding animals.json. Please check the file format.", n.Message)

	src := &stubSource{records: []types.RemoteRecord{{Name: "Lion"}}}
	s := New(local, src)
	assert.Zero(t, s.LocalCount())

	it := s.Search(context.Background(), "lion")
	assert.Equal(t, types.ProvenanceRemote, it.Set.Provenance())
	assert.Equal(t, int32(1), atomic.LoadInt32(&src.calls))
}

func TestSearchTimeout(t *testing.T) {
	src := blockingSource{}
	s := New(lions, src, WithTimeout(20*time.Millisecond))

	it := s.Search(context.Background(), "zebra")
	assert.Equal(t, Errored, it.State)
	assert.ErrorIs(t, it.Err, context.DeadlineExceeded)
}

// blockingSource waits for cancellation and reports it the way the remote
// client does.
type blockingSource struct{}

func (blockingSource) Search(ctx context.Context, _ string) ([]types.RemoteRecord, error) {
	<-ctx.Done()
	return nil, &types.NetworkError{Err: ctx.Err()}
}

func TestNewerQuerySupersedesRemoteLookup(t *testing.T) {
	src := newGatedSource()
	s := New(lions, src)

	first := make(chan Interaction, 1)
	go func() { first <- s.Search(context.Background(), "zebra") }()
	require.Equal(t, "zebra", <-src.started)

	// The newer query resolves while the first is still in flight.
	second := s.Search(context.Background(), "lion")
	assert.Equal(t, Resolved, second.State)

	close(src.release)
	stale := <-first

	assert.True(t, stale.Stale())
	assert.Equal(t, Errored, stale.State)
	assert.Less(t, stale.Seq, second.Seq)
	assert.Zero(t, stale.Set.Len(), "late response is dropped")
	_, ok := stale.Notice()
	assert.False(t, ok, "stale interactions are silent")
}

func TestNewerQueryCancelsInFlightContext(t *testing.T) {
	s := New(lions, blockingSource{}, WithTimeout(time.Minute))

	first := make(chan Interaction, 1)
	go func() { first <- s.Search(context.Background(), "zebra") }()

	// Wait until the first interaction has its sequence number.
	require.Eventually(t, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.seq == 1
	}, time.Second, time.Millisecond)

	_ = s.Search(context.Background(), "lion")

	select {
	case it := <-first:
		assert.True(t, it.Stale())
	case <-time.After(5 * time.Second):
		t.Fatal("in-flight lookup was not cancelled")
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "remote_lookup", RemoteLookup.String())
	assert.True(t, NotFound.Terminal())
	assert.False(t, LocalLookup.Terminal())
	assert.Equal(t, "unknown", State(42).String())
}
