package textproc

import "strings"

// DefaultMinReadableRatio is the fraction of allow-listed characters a
// text blob needs to count as readable prose.
const DefaultMinReadableRatio = 0.7

// minReadableLength is the shortest trimmed text worth scoring at all.
const minReadableLength = 10

const allowedPunct = `.,;:!?()[]{}"'-`

// IsReadable reports whether text looks like genuine prose rather than
// garbled binary noise. It is a heuristic gate for the extraction
// fallback chains, not a language detector.
func IsReadable(text string, minRatio float64) bool {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) < minReadableLength {
		return false
	}
	allowed := 0
	for _, r := range runes {
		if isAllowedRune(r) {
			allowed++
		}
	}
	return float64(allowed)/float64(len(runes)) >= minRatio
}

func isAllowedRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == ' ', r == '\n', r == '\t', r == '\r':
		return true
	case strings.ContainsRune(allowedPunct, r):
		return true
	case r >= 0xC0 && r <= 0xFF && r != 0xD7 && r != 0xF7:
		// Latin-1 supplement letters, multiplication and division
		// signs excluded.
		return true
	}
	return false
}
