package instance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "https://radarr.example.com", "https://radarr.example.com"},
		{"trailing slash stripped", "https://radarr.example.com/", "https://radarr.example.com"},
		{"path kept", "https://example.com/radarr", "https://example.com/radarr"},
		{"path trailing slash stripped", "https://example.com/radarr/", "https://example.com/radarr"},
		{"whitespace trimmed", "  https://example.com  ", "https://example.com"},
		{"fragment dropped", "https://example.com/app#settings", "https://example.com/app"},
		{"port kept", "http://example.com:7878", "http://example.com:7878"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeURL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeURLNotValid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no scheme", "radarr.example.com"},
		{"ftp scheme", "ftp://example.com"},
		{"scheme only", "https://"},
		{"garbage", "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeURL(tt.in)
			require.Error(t, err)

			cerr := AsConnectionError(err)
			assert.Equal(t, ErrorURLNotValid, cerr.Kind)
		})
	}
}

func TestNormalizeURLLocal(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"localhost", "http://localhost:7878"},
		{"localhost subdomain", "http://radarr.localhost"},
		{"mdns alias", "http://nas.local:8989"},
		{"loopback v4", "http://127.0.0.1"},
		{"loopback v6", "http://[::1]:7878"},
		{"link local", "http://169.254.10.20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeURL(tt.in)
			require.Error(t, err)

			cerr := AsConnectionError(err)
			assert.Equal(t, ErrorURLIsLocal, cerr.Kind)
		})
	}
}

func TestIsLocalHost(t *testing.T) {
	assert.True(t, isLocalHost("LOCALHOST"))
	assert.True(t, isLocalHost("printer.local"))
	assert.False(t, isLocalHost("example.com"))
	assert.False(t, isLocalHost("192.168.1.10"))
	assert.False(t, isLocalHost("locally.example.com"))
}
