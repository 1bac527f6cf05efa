package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/vmunix/helmarr/internal/arr"
	"github.com/vmunix/helmarr/internal/instance"
)

// ErrAcquireInFlight is returned when an acquire is already pending for
// the library context. The duplicate dispatch is dropped, not queued.
var ErrAcquireInFlight = errors.New("acquire already in flight")

// ReleaseView is the display-ready projection of a candidate release.
type ReleaseView struct {
	GUID      string
	IndexerID int64
	Title     string
	IsTorrent bool

	QualityLabel   string
	SizeLabel      string
	AgeLabel       string
	LanguageLabel  string
	IndexerLabel   string
	PeersLabel     string // set only for torrents
	RejectionLabel string

	Rejections []string
	Flags      []string
	InfoURL    string
}

// EvaluateRelease derives the display labels for a release. Pure
// formatting; the only rule is that peer counts appear for torrents only.
func EvaluateRelease(r arr.Release, now time.Time) ReleaseView {
	isTorrent := r.Protocol == arr.ProtocolTorrent

	view := ReleaseView{
		GUID:           r.GUID,
		IndexerID:      r.IndexerID,
		Title:          r.Title,
		IsTorrent:      isTorrent,
		QualityLabel:   r.Quality.Quality.Name,
		SizeLabel:      humanize.IBytes(uint64(max(r.Size, 0))),
		AgeLabel:       ageLabel(r, now),
		LanguageLabel:  languageLabel(r.Languages),
		IndexerLabel:   indexerLabel(r.Indexer),
		RejectionLabel: rejectionLabel(r.Rejections),
		Rejections:     r.Rejections,
		Flags:          r.IndexerFlags,
		InfoURL:        r.InfoURL,
	}

	if isTorrent {
		view.PeersLabel = fmt.Sprintf("%d / %d", intValue(r.Seeders), intValue(r.Leechers))
	}

	return view
}

func ageLabel(r arr.Release, now time.Time) string {
	published := r.PublishDate
	if published == nil {
		if r.AgeMinutes <= 0 {
			return ""
		}
		t := now.Add(-time.Duration(r.AgeMinutes) * time.Minute)
		published = &t
	}
	return humanize.RelTime(*published, now, "ago", "from now")
}

func languageLabel(languages []arr.Language) string {
	switch len(languages) {
	case 0:
		return ""
	case 1:
		return languages[0].Name
	}
	return "Multilingual"
}

// indexerLabel strips the access-mode suffix some proxies append.
func indexerLabel(indexer string) string {
	indexer = strings.TrimSuffix(indexer, " (Prowlarr)")
	indexer = strings.TrimSuffix(indexer, " (API)")
	return indexer
}

func rejectionLabel(rejections []string) string {
	switch len(rejections) {
	case 0:
		return ""
	case 1:
		return rejections[0]
	}
	return fmt.Sprintf("%s (+%d more)", rejections[0], len(rejections)-1)
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// Grabber dispatches downloads of searched releases.
type Grabber interface {
	Grab(ctx context.Context, guid string, indexerID int64) error
}

// Evaluator dispatches acquire actions for one library context. At most
// one acquire runs at a time; failures land in a shared last-error slot
// that presentation reads, and success clears it.
type Evaluator struct {
	client Grabber
	log    *slog.Logger

	mu       sync.Mutex
	inFlight bool
	lastErr  *instance.ConnectionError
}

// NewEvaluator creates an Evaluator backed by the given manager client.
func NewEvaluator(client Grabber, log *slog.Logger) *Evaluator {
	if log == nil {
		log = slog.Default()
	}
	return &Evaluator{client: client, log: log}
}

// Acquiring reports whether an acquire is in flight.
func (e *Evaluator) Acquiring() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inFlight
}

// Acquire asks the manager to download the release identified by the
// (guid, indexerId) pair. Duplicate dispatches while one is pending are
// rejected with ErrAcquireInFlight.
func (e *Evaluator) Acquire(ctx context.Context, r arr.Release) error {
	e.mu.Lock()
	if e.inFlight {
		e.mu.Unlock()
		return ErrAcquireInFlight
	}
	e.inFlight = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.inFlight = false
		e.mu.Unlock()
	}()

	err := e.client.Grab(ctx, r.GUID, r.IndexerID)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.log.Error("acquire failed", "guid", r.GUID, "indexer_id", r.IndexerID, "error", err)
		e.lastErr = instance.AsConnectionError(err)
		return err
	}

	e.log.Info("acquire dispatched", "guid", r.GUID, "indexer_id", r.IndexerID)
	e.lastErr = nil
	return nil
}

// LastError returns the most recent acquire failure, or nil.
func (e *Evaluator) LastError() *instance.ConnectionError {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// Dismiss clears the last acquire error without side effects.
func (e *Evaluator) Dismiss() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastErr = nil
}
