package arr

import "context"

//go:generate mockgen -source=api.go -destination=mocks/mock_api.go -package=mocks

// API is the manager surface the rest of the system consumes.
type API interface {
	// SystemStatus fetches the manager's identity.
	SystemStatus(ctx context.Context) (*SystemStatus, error)

	// ListMovies returns the movie library.
	ListMovies(ctx context.Context) ([]Movie, error)
	// GetMovie returns a single movie by its remote id.
	GetMovie(ctx context.Context, id int64) (*Movie, error)
	// AddMovie starts tracking a movie.
	AddMovie(ctx context.Context, m Movie) (*Movie, error)
	// UpdateMovie replaces a tracked movie's mutable fields.
	UpdateMovie(ctx context.Context, m Movie) (*Movie, error)
	// DeleteMovie stops tracking a movie.
	DeleteMovie(ctx context.Context, id int64, deleteFiles bool) error
	// EditMovies applies a bulk edit; only non-nil fields are applied.
	EditMovies(ctx context.Context, edit BatchEdit) ([]Movie, error)

	// ListSeries returns the series library.
	ListSeries(ctx context.Context) ([]Series, error)

	// Queue returns one page of the manager's download queue.
	Queue(ctx context.Context, page, pageSize int) (*QueuePage, error)

	// SearchReleases queries the manager's indexers for candidate
	// releases for a movie.
	SearchReleases(ctx context.Context, movieID int64) ([]Release, error)
	// Grab dispatches a download of a searched release.
	Grab(ctx context.Context, guid string, indexerID int64) error
}

var _ API = (*Client)(nil)
