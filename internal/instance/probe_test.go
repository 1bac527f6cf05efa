package instance

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/helmarr/internal/arr"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubStatusClient struct {
	status  *arr.SystemStatus
	err     error
	calls   *atomic.Int32
	entered chan struct{}
	release chan struct{}
}

func (s *stubStatusClient) SystemStatus(ctx context.Context) (*arr.SystemStatus, error) {
	if s.calls != nil {
		s.calls.Add(1)
	}
	if s.entered != nil {
		close(s.entered)
	}
	if s.release != nil {
		<-s.release
	}
	return s.status, s.err
}

func stubFactory(client StatusClient) StatusClientFactory {
	return func(baseURL, apiKey string, timeout time.Duration, headers []Header) StatusClient {
		return client
	}
}

func TestDetectVariant(t *testing.T) {
	tests := []struct {
		appName string
		want    Variant
	}{
		{"Radarr", VariantMovieManager},
		{"Sonarr", VariantSeriesManager},
	}

	for _, tt := range tests {
		t.Run(tt.appName, func(t *testing.T) {
			p := NewProber(stubFactory(&stubStatusClient{
				status: &arr.SystemStatus{AppName: tt.appName, Version: "5.0.0"},
			}), testLogger())

			v, err := p.Detect(context.Background(), "https://example.com", "key", time.Minute, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestDetectUnknownAppName(t *testing.T) {
	p := NewProber(stubFactory(&stubStatusClient{
		status: &arr.SystemStatus{AppName: "Lidarr"},
	}), testLogger())

	_, err := p.Detect(context.Background(), "https://example.com", "key", time.Minute, nil)
	require.Error(t, err)

	cerr := AsConnectionError(err)
	assert.Equal(t, ErrorBadAppName, cerr.Kind)
	assert.Equal(t, "Lidarr", cerr.AppName)
}

func TestDetectTransportError(t *testing.T) {
	p := NewProber(stubFactory(&stubStatusClient{err: assert.AnError}), testLogger())

	_, err := p.Detect(context.Background(), "https://example.com", "key", time.Minute, nil)
	require.Error(t, err)

	cerr := AsConnectionError(err)
	assert.Equal(t, ErrorAPI, cerr.Kind)
	assert.ErrorIs(t, cerr.Err, assert.AnError)
}

func TestDetectCollapsesConcurrentProbes(t *testing.T) {
	var calls atomic.Int32
	stub := &stubStatusClient{
		status:  &arr.SystemStatus{AppName: "Radarr"},
		calls:   &calls,
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	p := NewProber(stubFactory(stub), testLogger())

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		v, err := p.Detect(context.Background(), "https://example.com", "key", time.Minute, nil)
		assert.NoError(t, err)
		assert.Equal(t, VariantMovieManager, v)
	}()

	<-stub.entered
	go func() {
		defer wg.Done()
		v, err := p.Detect(context.Background(), "https://example.com", "key", time.Minute, nil)
		assert.NoError(t, err)
		assert.Equal(t, VariantMovieManager, v)
	}()

	time.Sleep(20 * time.Millisecond)
	close(stub.release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "duplicate probe should join the in-flight one")
}

func TestDetectDistinctKeysProbeSeparately(t *testing.T) {
	var calls atomic.Int32
	stub := &stubStatusClient{status: &arr.SystemStatus{AppName: "Radarr"}, calls: &calls}
	p := NewProber(stubFactory(stub), testLogger())

	_, err := p.Detect(context.Background(), "https://one.example.com", "key", time.Minute, nil)
	require.NoError(t, err)
	_, err = p.Detect(context.Background(), "https://two.example.com", "key", time.Minute, nil)
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
}
