// Package media derives user-facing semantic state and display values
// from raw manager payloads.
package media

import (
	"time"

	"github.com/vmunix/helmarr/internal/arr"
)

// State is the semantic status of a library item.
type State string

const (
	StateDownloaded State = "Downloaded"
	StateWaiting    State = "Waiting"
	StateMissing    State = "Missing"
	StateUnwanted   State = "Unwanted"
)

// untrackedIDOffset shifts catalog ids for items the manager is not
// tracking yet, keeping them clear of the remote id space.
const untrackedIDOffset int64 = 100_000_000

// ItemID returns a stable identity for a movie: the remote id once
// tracked, otherwise the catalog id offset out of the remote range.
func ItemID(m arr.Movie) int64 {
	if m.ID != 0 {
		return m.ID
	}
	return m.TmdbID + untrackedIDOffset
}

// IsTracked reports whether the manager has accepted the movie.
func IsTracked(m arr.Movie) bool {
	return m.ID != 0
}

// DeriveState computes the semantic state of a movie as of today.
// A file on disk always wins; otherwise an item still behind its
// configured availability gate is Waiting, a monitored item past the
// gate is Missing, and anything else is Unwanted.
func DeriveState(m arr.Movie, today time.Time) State {
	if m.HasFile {
		return StateDownloaded
	}
	if isWaiting(m, today) {
		return StateWaiting
	}
	if m.Monitored {
		return StateMissing
	}
	return StateUnwanted
}

// isWaiting reports whether the movie has not yet cleared its minimum
// availability gate. TBA and announced items always wait. An in-cinemas
// item waits only when availability is gated on the home release, and
// stops waiting once a digital or physical date has passed even if the
// reported status is stale.
func isWaiting(m arr.Movie, today time.Time) bool {
	switch m.Status {
	case arr.StatusTBA, arr.StatusAnnounced:
		return true
	case arr.StatusInCinemas:
		if m.MinimumAvailability != arr.StatusReleased {
			return false
		}
		return !datePassed(m.DigitalRelease, today) && !datePassed(m.PhysicalRelease, today)
	}
	return false
}

func datePassed(t *time.Time, today time.Time) bool {
	return t != nil && !t.After(today)
}

// ReleaseWindow labels which release date of an item a day falls on.
type ReleaseWindow string

const (
	WindowNone     ReleaseWindow = ""
	WindowCinemas  ReleaseWindow = "In Cinemas"
	WindowDigital  ReleaseWindow = "Digital Release"
	WindowPhysical ReleaseWindow = "Physical Release"
)

// ReleaseWindowOn matches a day against the movie's release dates in the
// viewer's local calendar. First match wins in the order cinemas,
// digital, physical; WindowNone when no date matches.
func ReleaseWindowOn(m arr.Movie, day time.Time) ReleaseWindow {
	switch {
	case sameDay(m.InCinemas, day):
		return WindowCinemas
	case sameDay(m.DigitalRelease, day):
		return WindowDigital
	case sameDay(m.PhysicalRelease, day):
		return WindowPhysical
	}
	return WindowNone
}

func sameDay(t *time.Time, day time.Time) bool {
	if t == nil {
		return false
	}
	y1, m1, d1 := t.Local().Date()
	y2, m2, d2 := day.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
