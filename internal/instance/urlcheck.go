package instance

import (
	"net"
	"net/url"
	"strings"
)

// NormalizeURL trims and validates a candidate base URL. It fails with
// ErrorURLNotValid unless the string is an absolute http(s) URL, and with
// ErrorURLIsLocal when the host is a loopback or local-network alias.
// The returned URL has no trailing slash.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	u, err := url.Parse(raw)
	if err != nil {
		return "", invalidURLError()
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", invalidURLError()
	}
	if u.Host == "" {
		return "", invalidURLError()
	}

	if isLocalHost(u.Hostname()) {
		return "", localURLError()
	}

	u.Path = strings.TrimRight(u.Path, "/")
	u.Fragment = ""
	return u.String(), nil
}

// isLocalHost reports whether host is loopback or a local-network alias.
func isLocalHost(host string) bool {
	host = strings.ToLower(host)

	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}
	if strings.HasSuffix(host, ".local") {
		return true
	}

	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback() || ip.IsLinkLocalUnicast()
	}

	return false
}
