package instance

import "strings"

// Validate runs the ordered local checks on a descriptor: label, then URL.
// On success it returns a cleaned copy with the label trimmed and the URL
// normalized. Headers pass through untouched, duplicates included.
//
// An empty API key is not a validation error; it gates submission instead
// (see CanSubmit). A variant mismatch is never detected locally, so it
// never fails validation; only the network probe can surface one.
func Validate(inst Instance) (Instance, error) {
	label := strings.TrimSpace(inst.Label)
	if label == "" {
		return inst, emptyLabelError()
	}

	normalized, err := NormalizeURL(inst.BaseURL)
	if err != nil {
		return inst, err
	}

	inst.Label = label
	inst.BaseURL = normalized
	return inst, nil
}

// CanSubmit reports whether the descriptor is complete enough to submit:
// all validated fields present plus a non-empty API key.
func CanSubmit(inst Instance) bool {
	if strings.TrimSpace(inst.Label) == "" {
		return false
	}
	if strings.TrimSpace(inst.APIKey) == "" {
		return false
	}
	_, err := NormalizeURL(inst.BaseURL)
	return err == nil
}
