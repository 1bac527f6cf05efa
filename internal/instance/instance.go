// Package instance manages remote media manager connections: descriptors,
// validation, variant detection, and the create/update/delete lifecycle.
package instance

import "time"

// Variant identifies which flavor of media manager an instance is.
type Variant string

const (
	VariantMovieManager  Variant = "radarr"
	VariantSeriesManager Variant = "sonarr"
)

// AppName returns the application name the manager reports for this variant.
func (v Variant) AppName() string {
	switch v {
	case VariantMovieManager:
		return "Radarr"
	case VariantSeriesManager:
		return "Sonarr"
	}
	return string(v)
}

// VariantFromAppName maps a reported application name to a Variant.
func VariantFromAppName(name string) (Variant, bool) {
	switch name {
	case "Radarr":
		return VariantMovieManager, true
	case "Sonarr":
		return VariantSeriesManager, true
	}
	return "", false
}

// Allowed request timeouts, in seconds.
const (
	TimeoutShort   = 10
	TimeoutMedium  = 30
	TimeoutDefault = 60
)

// Header is a custom HTTP header sent with every request to an instance.
// Duplicate names are permitted and all entries are sent.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Instance describes a configured remote media manager.
// ID is zero until the registry accepts the instance.
type Instance struct {
	ID             int64    `json:"id"`
	Label          string   `json:"label"`
	Variant        Variant  `json:"variant"`
	BaseURL        string   `json:"baseUrl"`
	APIKey         string   `json:"apiKey"`
	TimeoutSeconds int      `json:"timeoutSeconds"`
	Headers        []Header `json:"headers"`
}

// Timeout returns the configured request timeout, defaulting to 60s.
func (i Instance) Timeout() time.Duration {
	switch i.TimeoutSeconds {
	case TimeoutShort, TimeoutMedium, TimeoutDefault:
		return time.Duration(i.TimeoutSeconds) * time.Second
	}
	return TimeoutDefault * time.Second
}
