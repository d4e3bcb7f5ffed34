package extract

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	"doctext/textproc"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// charsetChain lists the single-byte decoders tried after UTF-8. Latin-1
// accepts every byte value, so the entries behind it only matter when
// the chain is reordered; the list is kept as configured behavior rather
// than trimmed to its reachable prefix.
var charsetChain = []struct {
	name string
	cm   *charmap.Charmap
}{
	{"latin-1", charmap.ISO8859_1},
	{"windows-1252", charmap.Windows1252},
	{"iso-8859-15", charmap.ISO8859_15},
}

// TextExtractor decodes plain-text uploads, trying a fixed list of
// character encodings and falling back to lossy UTF-8 as a last resort.
type TextExtractor struct {
	logger *zap.Logger
}

func NewTextExtractor(logger *zap.Logger) *TextExtractor {
	return &TextExtractor{logger: logger}
}

// Extract succeeds on any input that still holds text after decoding
// and normalization; decoding with replacement characters still counts
// as an extraction. The strategy used is recorded in metadata.encoding.
func (t *TextExtractor) Extract(data []byte) *ExtractionResult {
	if len(data) == 0 {
		return failure(MethodPlainText, "empty input")
	}
	text, encoding := decodeBytes(data)
	t.logger.Debug("decoded plain text",
		zap.String("encoding", encoding), zap.Int("bytes", len(data)))
	clean := textproc.Normalize(text)
	if clean == "" {
		return failure(MethodPlainText, "no textual content after decoding")
	}
	return succeed(clean, MethodPlainText, 1, map[string]string{"encoding": encoding})
}

func decodeBytes(data []byte) (string, string) {
	if bytes.HasPrefix(data, utf8BOM) && utf8.Valid(data[len(utf8BOM):]) {
		return string(data[len(utf8BOM):]), "utf-8-sig"
	}
	if utf8.Valid(data) {
		return string(data), "utf-8"
	}
	for _, c := range charsetChain {
		if out, err := c.cm.NewDecoder().Bytes(data); err == nil {
			return string(out), c.name
		}
	}
	return strings.ToValidUTF8(string(data), "�"), "utf-8-replace"
}
