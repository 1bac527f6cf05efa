// Package match provides fuzzy title matching for library searches.
package match

import (
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Confidence buckets a similarity score.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // score < 0.70
	ConfidenceLow                      // score >= 0.70
	ConfidenceMedium                   // score >= 0.85
	ConfidenceHigh                     // score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Result is a scored candidate title.
type Result struct {
	Index      int     // position in the candidates slice
	Title      string  // the matched candidate title
	Score      float64 // Jaro-Winkler similarity, 0.0-1.0
	Confidence Confidence
}

// Best finds the candidate title most similar to the query.
// Jaro-Winkler favors prefix matches, which suits media titles.
func Best(query string, candidates []string) Result {
	if len(candidates) == 0 {
		return Result{Index: -1, Confidence: ConfidenceNone}
	}

	normalized := CleanTitle(query)
	best := Result{Index: -1}

	for i, candidate := range candidates {
		score := float64(edlib.JaroWinklerSimilarity(normalized, CleanTitle(candidate)))
		if score > best.Score {
			best.Index = i
			best.Title = candidate
			best.Score = score
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	}

	return best
}

// CleanTitle normalizes a title for comparison: lowercase, accents
// stripped, punctuation flattened, leading articles removed.
func CleanTitle(title string) string {
	s := strings.ToLower(title)
	s = removeAccents(s)

	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "'", "")
	for _, sep := range []string{"-", ".", ":", ","} {
		s = strings.ReplaceAll(s, sep, " ")
	}

	s = stripLeadingArticle(strings.Join(strings.Fields(s), " "))
	return s
}

func stripLeadingArticle(s string) string {
	for _, article := range []string{"the ", "a ", "an "} {
		if rest, ok := strings.CutPrefix(s, article); ok {
			return rest
		}
	}
	return s
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
