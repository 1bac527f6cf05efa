package instance

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/vmunix/helmarr/internal/arr"
)

// StatusClient probes a manager for its identity.
type StatusClient interface {
	SystemStatus(ctx context.Context) (*arr.SystemStatus, error)
}

// StatusClientFactory builds a probe client for a candidate connection.
type StatusClientFactory func(baseURL, apiKey string, timeout time.Duration, headers []Header) StatusClient

func defaultStatusClientFactory(baseURL, apiKey string, timeout time.Duration, headers []Header) StatusClient {
	opts := []arr.Option{arr.WithTimeout(timeout)}
	for _, h := range headers {
		opts = append(opts, arr.WithHeader(h.Name, h.Value))
	}
	return arr.New(baseURL, apiKey, opts...)
}

// Prober detects which manager variant a URL and API key belong to.
// Concurrent probes for the same URL and key collapse into a single
// request, so re-running on every field commit stays cheap.
type Prober struct {
	factory StatusClientFactory
	group   singleflight.Group
	log     *slog.Logger
}

// NewProber creates a Prober. A nil factory uses the real HTTP client.
func NewProber(factory StatusClientFactory, log *slog.Logger) *Prober {
	if factory == nil {
		factory = defaultStatusClientFactory
	}
	if log == nil {
		log = slog.Default()
	}
	return &Prober{factory: factory, log: log}
}

// Detect probes the system status endpoint and returns the variant the
// manager reports. Transport and server failures surface as ErrorAPI; an
// unrecognized application name surfaces as ErrorBadAppName.
func (p *Prober) Detect(ctx context.Context, baseURL, apiKey string, timeout time.Duration, headers []Header) (Variant, error) {
	key := baseURL + "\x00" + apiKey

	v, err, _ := p.group.Do(key, func() (any, error) {
		client := p.factory(baseURL, apiKey, timeout, headers)

		status, err := client.SystemStatus(ctx)
		if err != nil {
			p.log.Debug("probe failed", "url", baseURL, "error", err)
			return nil, apiError(err)
		}

		variant, ok := VariantFromAppName(status.AppName)
		if !ok {
			return nil, badAppNameError(status.AppName)
		}

		p.log.Debug("probe succeeded", "url", baseURL, "app", status.AppName, "version", status.Version)
		return variant, nil
	})
	if err != nil {
		return "", err
	}

	return v.(Variant), nil
}
