package media

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/helmarr/internal/arr"
	"github.com/vmunix/helmarr/internal/arr/mocks"
	"github.com/vmunix/helmarr/internal/instance"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(n int) *int { return &n }

var evalNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestEvaluateReleaseTorrent(t *testing.T) {
	published := evalNow.Add(-26 * time.Hour)
	r := arr.Release{
		GUID:        "abc",
		IndexerID:   3,
		Title:       "Heat 1995 1080p BluRay",
		Size:        8 * 1024 * 1024 * 1024,
		PublishDate: &published,
		Indexer:     "TorrentLeech (API)",
		Protocol:    arr.ProtocolTorrent,
		Seeders:     intPtr(42),
		Leechers:    intPtr(7),
		Quality:     arr.Quality{Quality: arr.QualityName{ID: 7, Name: "Bluray-1080p"}},
		Languages:   []arr.Language{{ID: 1, Name: "English"}},
	}

	v := EvaluateRelease(r, evalNow)

	assert.True(t, v.IsTorrent)
	assert.Equal(t, "Bluray-1080p", v.QualityLabel)
	assert.Equal(t, "8.0 GiB", v.SizeLabel)
	assert.Equal(t, "1 day ago", v.AgeLabel)
	assert.Equal(t, "English", v.LanguageLabel)
	assert.Equal(t, "TorrentLeech", v.IndexerLabel)
	assert.Equal(t, "42 / 7", v.PeersLabel)
	assert.Empty(t, v.RejectionLabel)
}

func TestEvaluateReleaseUsenetHasNoPeers(t *testing.T) {
	r := arr.Release{
		Title:    "Heat 1995 2160p",
		Protocol: arr.ProtocolUsenet,
		Seeders:  intPtr(10),
		Leechers: intPtr(5),
	}

	v := EvaluateRelease(r, evalNow)

	assert.False(t, v.IsTorrent)
	assert.Empty(t, v.PeersLabel, "peer counts are torrent-only")
}

func TestEvaluateReleaseTorrentMissingPeerCounts(t *testing.T) {
	v := EvaluateRelease(arr.Release{Protocol: arr.ProtocolTorrent}, evalNow)
	assert.Equal(t, "0 / 0", v.PeersLabel)
}

func TestEvaluateReleaseAgeFallback(t *testing.T) {
	// No publish date: derive from the reported age in minutes.
	v := EvaluateRelease(arr.Release{AgeMinutes: 3 * 24 * 60}, evalNow)
	assert.Equal(t, "3 days ago", v.AgeLabel)

	v = EvaluateRelease(arr.Release{}, evalNow)
	assert.Empty(t, v.AgeLabel)
}

func TestEvaluateReleaseLanguages(t *testing.T) {
	v := EvaluateRelease(arr.Release{}, evalNow)
	assert.Empty(t, v.LanguageLabel)

	v = EvaluateRelease(arr.Release{
		Languages: []arr.Language{{Name: "French"}},
	}, evalNow)
	assert.Equal(t, "French", v.LanguageLabel)

	v = EvaluateRelease(arr.Release{
		Languages: []arr.Language{{Name: "English"}, {Name: "French"}},
	}, evalNow)
	assert.Equal(t, "Multilingual", v.LanguageLabel)
}

func TestEvaluateReleaseIndexerSuffixes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"NZBgeek (Prowlarr)", "NZBgeek"},
		{"TorrentLeech (API)", "TorrentLeech"},
		{"DrunkenSlug", "DrunkenSlug"},
	}

	for _, tt := range tests {
		v := EvaluateRelease(arr.Release{Indexer: tt.in}, evalNow)
		assert.Equal(t, tt.want, v.IndexerLabel)
	}
}

func TestEvaluateReleaseRejections(t *testing.T) {
	v := EvaluateRelease(arr.Release{Rejections: []string{"no quality profile match"}}, evalNow)
	assert.Equal(t, "no quality profile match", v.RejectionLabel)

	v = EvaluateRelease(arr.Release{
		Rejections: []string{"no quality profile match", "size too large", "unknown language"},
	}, evalNow)
	assert.Equal(t, "no quality profile match (+2 more)", v.RejectionLabel)
	assert.Len(t, v.Rejections, 3)
}

type stubGrabber struct {
	mu      sync.Mutex
	calls   int
	err     error
	entered chan struct{}
	release chan struct{}
}

func (g *stubGrabber) Grab(ctx context.Context, guid string, indexerID int64) error {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	if g.entered != nil {
		close(g.entered)
	}
	if g.release != nil {
		<-g.release
	}
	return g.err
}

func TestAcquire(t *testing.T) {
	g := &stubGrabber{}
	e := NewEvaluator(g, testLogger())

	err := e.Acquire(context.Background(), arr.Release{GUID: "abc", IndexerID: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, g.calls)
	assert.Nil(t, e.LastError())
	assert.False(t, e.Acquiring())
}

func TestAcquireSendsGuidAndIndexerPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	api.EXPECT().Grab(gomock.Any(), "guid-1", int64(5)).Return(nil)

	e := NewEvaluator(api, testLogger())
	require.NoError(t, e.Acquire(context.Background(), arr.Release{GUID: "guid-1", IndexerID: 5}))
}

func TestAcquireDuplicateDropped(t *testing.T) {
	g := &stubGrabber{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	e := NewEvaluator(g, testLogger())

	done := make(chan error, 1)
	go func() {
		done <- e.Acquire(context.Background(), arr.Release{GUID: "abc"})
	}()

	<-g.entered
	assert.True(t, e.Acquiring())

	err := e.Acquire(context.Background(), arr.Release{GUID: "abc"})
	assert.ErrorIs(t, err, ErrAcquireInFlight)

	close(g.release)
	require.NoError(t, <-done)

	g.mu.Lock()
	defer g.mu.Unlock()
	assert.Equal(t, 1, g.calls)
}

func TestAcquireFailureSetsLastError(t *testing.T) {
	g := &stubGrabber{err: assert.AnError}
	e := NewEvaluator(g, testLogger())

	err := e.Acquire(context.Background(), arr.Release{GUID: "abc"})
	require.Error(t, err)

	cerr := e.LastError()
	require.NotNil(t, cerr)
	assert.Equal(t, instance.ErrorAPI, cerr.Kind)

	e.Dismiss()
	assert.Nil(t, e.LastError())
}

func TestAcquireSuccessClearsLastError(t *testing.T) {
	g := &stubGrabber{err: assert.AnError}
	e := NewEvaluator(g, testLogger())

	_ = e.Acquire(context.Background(), arr.Release{GUID: "abc"})
	require.NotNil(t, e.LastError())

	g.err = nil
	require.NoError(t, e.Acquire(context.Background(), arr.Release{GUID: "abc"}))
	assert.Nil(t, e.LastError())
}
