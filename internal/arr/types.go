package arr

import "time"

// SystemStatus is the identity reported by a manager's status endpoint.
type SystemStatus struct {
	AppName      string `json:"appName"`
	InstanceName string `json:"instanceName"`
	Version      string `json:"version"`
}

// MediaStatus is the release stage of a library item.
type MediaStatus string

const (
	StatusTBA       MediaStatus = "tba"
	StatusAnnounced MediaStatus = "announced"
	StatusInCinemas MediaStatus = "inCinemas"
	StatusReleased  MediaStatus = "released"
	StatusDeleted   MediaStatus = "deleted"
)

// Image is artwork attached to a library item.
type Image struct {
	CoverType string `json:"coverType"`
	RemoteURL string `json:"remoteUrl"`
}

// Ratings holds aggregate rating values keyed by source.
type Ratings struct {
	Tmdb Rating `json:"tmdb"`
	Imdb Rating `json:"imdb"`
}

// Rating is a single aggregate rating.
type Rating struct {
	Votes int64   `json:"votes"`
	Value float64 `json:"value"`
}

// Movie is a library item in the movie manager's v3 wire format.
type Movie struct {
	ID                  int64       `json:"id"`
	TmdbID              int64       `json:"tmdbId"`
	ImdbID              string      `json:"imdbId,omitempty"`
	Title               string      `json:"title"`
	SortTitle           string      `json:"sortTitle,omitempty"`
	Year                int         `json:"year"`
	Runtime             int         `json:"runtime"`
	Overview            string      `json:"overview,omitempty"`
	Genres              []string    `json:"genres,omitempty"`
	Ratings             Ratings     `json:"ratings"`
	Images              []Image     `json:"images,omitempty"`
	Status              MediaStatus `json:"status"`
	MinimumAvailability MediaStatus `json:"minimumAvailability"`
	Monitored           bool        `json:"monitored"`
	HasFile             bool        `json:"hasFile"`
	QualityProfileID    int64       `json:"qualityProfileId"`
	Path                string      `json:"path,omitempty"`
	RootFolderPath      string      `json:"rootFolderPath,omitempty"`
	SizeOnDisk          int64       `json:"sizeOnDisk"`
	InCinemas           *time.Time  `json:"inCinemas,omitempty"`
	DigitalRelease      *time.Time  `json:"digitalRelease,omitempty"`
	PhysicalRelease     *time.Time  `json:"physicalRelease,omitempty"`
	Added               *time.Time  `json:"added,omitempty"`
}

// Series is a library item in the series manager's v3 wire format.
type Series struct {
	ID               int64       `json:"id"`
	TvdbID           int64       `json:"tvdbId"`
	Title            string      `json:"title"`
	SortTitle        string      `json:"sortTitle,omitempty"`
	Year             int         `json:"year"`
	Overview         string      `json:"overview,omitempty"`
	Genres           []string    `json:"genres,omitempty"`
	Status           string      `json:"status"`
	Monitored        bool        `json:"monitored"`
	QualityProfileID int64       `json:"qualityProfileId"`
	Path             string      `json:"path,omitempty"`
	Images           []Image     `json:"images,omitempty"`
	Statistics       *SeriesStat `json:"statistics,omitempty"`
}

// SeriesStat is the aggregate file state of a series.
type SeriesStat struct {
	EpisodeCount      int   `json:"episodeCount"`
	EpisodeFileCount  int   `json:"episodeFileCount"`
	TotalEpisodeCount int   `json:"totalEpisodeCount"`
	SizeOnDisk        int64 `json:"sizeOnDisk"`
}

// Download protocols reported on releases.
const (
	ProtocolTorrent = "torrent"
	ProtocolUsenet  = "usenet"
)

// Release is a candidate download returned by a release search.
type Release struct {
	GUID         string     `json:"guid"`
	IndexerID    int64      `json:"indexerId"`
	Title        string     `json:"title"`
	Size         int64      `json:"size"`
	AgeMinutes   float64    `json:"ageMinutes"`
	PublishDate  *time.Time `json:"publishDate,omitempty"`
	Indexer      string     `json:"indexer"`
	IndexerFlags []string   `json:"indexerFlags,omitempty"`
	Protocol     string     `json:"protocol"`
	Seeders      *int       `json:"seeders,omitempty"`
	Leechers     *int       `json:"leechers,omitempty"`
	Quality      Quality    `json:"quality"`
	Languages    []Language `json:"languages,omitempty"`
	Rejected     bool       `json:"rejected"`
	Rejections   []string   `json:"rejections,omitempty"`
	InfoURL      string     `json:"infoUrl,omitempty"`
}

// Quality wraps the nested quality resource.
type Quality struct {
	Quality QualityName `json:"quality"`
}

// QualityName identifies a quality definition.
type QualityName struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Language identifies a release language.
type Language struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// QueuePage is one page of the manager's download queue.
type QueuePage struct {
	Page         int         `json:"page"`
	PageSize     int         `json:"pageSize"`
	TotalRecords int         `json:"totalRecords"`
	Records      []QueueItem `json:"records"`
}

// QueueItem is an active or stalled download tracked by the manager.
type QueueItem struct {
	ID             int64  `json:"id"`
	MovieID        int64  `json:"movieId,omitempty"`
	SeriesID       int64  `json:"seriesId,omitempty"`
	Title          string `json:"title"`
	Status         string `json:"status"`
	TimeLeft       string `json:"timeleft,omitempty"`
	Size           int64  `json:"size"`
	SizeLeft       int64  `json:"sizeleft"`
	Protocol       string `json:"protocol"`
	Indexer        string `json:"indexer,omitempty"`
	DownloadClient string `json:"downloadClient,omitempty"`
}

// BatchEdit is the bulk editor payload. Only non-nil fields are applied.
type BatchEdit struct {
	MovieIDs            []int64      `json:"movieIds"`
	Monitored           *bool        `json:"monitored,omitempty"`
	QualityProfileID    *int64       `json:"qualityProfileId,omitempty"`
	MinimumAvailability *MediaStatus `json:"minimumAvailability,omitempty"`
	RootFolderPath      *string      `json:"rootFolderPath,omitempty"`
	MoveFiles           *bool        `json:"moveFiles,omitempty"`
}

// grabRequest dispatches a download of a searched release.
type grabRequest struct {
	GUID      string `json:"guid"`
	IndexerID int64  `json:"indexerId"`
}
