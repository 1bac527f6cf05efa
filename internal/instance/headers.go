package instance

import (
	"encoding/base64"
	"strings"
)

// EncodeBasicAuth builds an Authorization header from a username and
// password. Empty credentials still produce a header; no character set
// validation is applied.
func EncodeBasicAuth(username, password string) Header {
	token := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return Header{
		Name:  "Authorization",
		Value: "Basic " + token,
	}
}

// DecodeBasicAuth recovers the credentials from a Basic Authorization
// header value. Returns false if the value is not a decodable Basic token.
func DecodeBasicAuth(value string) (username, password string, ok bool) {
	token, found := strings.CutPrefix(value, "Basic ")
	if !found {
		return "", "", false
	}

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", "", false
	}

	username, password, found = strings.Cut(string(raw), ":")
	if !found {
		return "", "", false
	}
	return username, password, true
}

// ParsePastedHeaders imports headers from pasted text, one "Name: value"
// pair per line. Lines that don't parse are dropped silently; the import
// is best-effort and never fails.
func ParsePastedHeaders(text string) []Header {
	var headers []Header

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		name, value, found := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if !found || name == "" || value == "" {
			continue
		}

		headers = append(headers, Header{Name: name, Value: value})
	}

	return headers
}
