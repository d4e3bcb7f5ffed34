package textproc

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// mojibakeReplacer repairs UTF-8 byte sequences that were mis-decoded as
// Latin-1 somewhere upstream. Longer sequences are listed first so they
// win over their own prefixes.
var mojibakeReplacer = strings.NewReplacer(
	"â€œ", "“",
	"â€˜", "‘",
	"â€™", "’",
	"â€“", "–",
	"â€”", "—",
	"â€¦", "…",
	"â€¢", "•",
	"â€", "”",
	"â‚¬", "€",
	"â„¢", "™",
	"Ã¡", "á",
	"Ã©", "é",
	"Ã­", "í",
	"Ã³", "ó",
	"Ãº", "ú",
	"Ã±", "ñ",
	"Ã¼", "ü",
	"Ã§", "ç",
	"Ã ", "à",
	"Ã¨", "è",
	"Ãª", "ê",
	"Ã¢", "â",
	"Ã®", "î",
	"Ã´", "ô",
	"Ã»", "û",
	"Ã¤", "ä",
	"Ã¶", "ö",
	"Ã‰", "É",
	"Ã‘", "Ñ",
	"Ãœ", "Ü",
	"Â¿", "¿",
	"Â¡", "¡",
	"Â«", "«",
	"Â»", "»",
	"Â°", "°",
	"Â·", "·",
	"Â ", " ",
)

var (
	reBlankRuns     = regexp.MustCompile(`\n{3,}`)
	reSpaceRuns     = regexp.MustCompile(`[ \t]+`)
	reSpaceAroundNL = regexp.MustCompile(` *\n *`)
)

// Normalize cleans raw extractor output: canonical composition, control
// character removal, mojibake repair and whitespace collapsing. It never
// fails and Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := norm.NFC.String(raw)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = stripControls(s)
	s = mojibakeReplacer.Replace(s)
	s = reBlankRuns.ReplaceAllString(s, "\n\n")
	s = reSpaceRuns.ReplaceAllString(s, " ")
	s = reSpaceAroundNL.ReplaceAllString(s, "\n")
	// Removing spaces around newlines can merge blank-line runs that the
	// first collapse could not see.
	s = reBlankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// stripControls drops C0 and C1 control characters, keeping newline and
// tab. Format characters like the soft hyphen survive so the mojibake
// table can still match them.
func stripControls(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r <= 0x9f) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
