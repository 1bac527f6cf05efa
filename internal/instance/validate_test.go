package instance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCleans(t *testing.T) {
	inst := Instance{
		Label:   "  Movies  ",
		BaseURL: "https://radarr.example.com/",
		APIKey:  "key",
		Headers: []Header{{Name: "X-Tag", Value: "a"}, {Name: "X-Tag", Value: "b"}},
	}

	cleaned, err := Validate(inst)
	require.NoError(t, err)

	assert.Equal(t, "Movies", cleaned.Label)
	assert.Equal(t, "https://radarr.example.com", cleaned.BaseURL)
	assert.Len(t, cleaned.Headers, 2, "duplicate headers pass through")
}

func TestValidateLabelFirst(t *testing.T) {
	// Label is checked before the URL, so a descriptor with both problems
	// reports the label.
	inst := Instance{Label: "   ", BaseURL: "not a url"}

	_, err := Validate(inst)
	require.Error(t, err)
	assert.Equal(t, ErrorLabelEmpty, AsConnectionError(err).Kind)
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		kind ErrorKind
	}{
		{"invalid", "example.com", ErrorURLNotValid},
		{"local", "http://localhost:7878", ErrorURLIsLocal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(Instance{Label: "Movies", BaseURL: tt.url})
			require.Error(t, err)
			assert.Equal(t, tt.kind, AsConnectionError(err).Kind)
		})
	}
}

func TestCanSubmit(t *testing.T) {
	complete := Instance{Label: "Movies", BaseURL: "https://example.com", APIKey: "key"}
	assert.True(t, CanSubmit(complete))

	tests := []struct {
		name   string
		mutate func(*Instance)
	}{
		{"no label", func(i *Instance) { i.Label = "" }},
		{"no api key", func(i *Instance) { i.APIKey = "  " }},
		{"bad url", func(i *Instance) { i.BaseURL = "example.com" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := complete
			tt.mutate(&inst)
			assert.False(t, CanSubmit(inst))
		})
	}
}

func TestConnectionErrorPresentation(t *testing.T) {
	tests := []struct {
		err   *ConnectionError
		title string
	}{
		{localURLError(), "Invalid URL"},
		{invalidURLError(), "Invalid URL"},
		{emptyLabelError(), "Invalid Label"},
		{badAppNameError("Sonarr"), "Wrong Instance Type"},
		{apiError(assert.AnError), "Connection Failed"},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Kind), func(t *testing.T) {
			assert.Equal(t, tt.title, tt.err.Title())
			assert.NotEmpty(t, tt.err.Suggestion())
		})
	}
}

func TestBadAppNameSuggestionNamesApp(t *testing.T) {
	err := badAppNameError("Sonarr")
	assert.Contains(t, err.Suggestion(), "Sonarr")
}
