package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"doctext/textproc"
)

// PDFExtractor tries several PDF parsers in a fixed order and keeps the
// first result that survives normalization, the minimum-length check and
// the readability gate. Individual parser failures are downgraded to
// "try the next one"; only full exhaustion fails the request.
type PDFExtractor struct {
	logger *zap.Logger
	opts   Options
}

func NewPDFExtractor(logger *zap.Logger, opts Options) *PDFExtractor {
	return &PDFExtractor{logger: logger, opts: opts}
}

type pdfMethod struct {
	name string
	run  func(data []byte) (text string, pages int, meta map[string]string, err error)
}

func (p *PDFExtractor) methods() []pdfMethod {
	return []pdfMethod{
		{"ledongthuc", p.extractLedongthuc},
		{"mupdf", p.extractMuPDF},
		{"pdfcpu", p.extractStream},
	}
}

// Extract runs the fallback chain. Underlying parser errors are logged
// for operators only; the caller sees a stable message.
func (p *PDFExtractor) Extract(data []byte) *ExtractionResult {
	for _, m := range p.methods() {
		text, pages, meta, err := p.attempt(m, data)
		if err != nil {
			p.logger.Debug("pdf method failed",
				zap.String("method", m.name), zap.Error(err))
			continue
		}
		clean := textproc.Normalize(text)
		if len([]rune(clean)) <= p.opts.MinTextLength {
			p.logger.Debug("pdf method produced too little text",
				zap.String("method", m.name), zap.Int("length", len(clean)))
			continue
		}
		if !textproc.IsReadable(clean, p.opts.MinReadableRatio) {
			p.logger.Debug("pdf method produced unreadable text",
				zap.String("method", m.name))
			continue
		}
		return succeed(clean, m.name, pages, meta)
	}
	return failure(MethodNone, "all extraction methods failed")
}

// attempt isolates a single parser: a panic inside a PDF library counts
// as that method's failure, not the request's.
func (p *PDFExtractor) attempt(m pdfMethod, data []byte) (text string, pages int, meta map[string]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: panic: %v", m.name, r)
		}
	}()
	return m.run(data)
}

// extractLedongthuc is the primary parser: per-page plain text plus the
// document information dictionary.
func (p *PDFExtractor) extractLedongthuc(data []byte) (string, int, map[string]string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, nil, fmt.Errorf("open pdf: %w", err)
	}
	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			p.logger.Debug("page extraction failed",
				zap.Int("page", i), zap.Error(err))
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(pageText)
	}
	return sb.String(), r.NumPage(), pdfInfo(r), nil
}

// pdfInfo copies the information dictionary when present. Missing fields
// stay empty strings, never errors.
func pdfInfo(r *pdf.Reader) map[string]string {
	meta := map[string]string{}
	info := r.Trailer().Key("Info")
	if info.IsNull() {
		return meta
	}
	fields := [][2]string{
		{"title", "Title"},
		{"author", "Author"},
		{"subject", "Subject"},
		{"creator", "Creator"},
		{"producer", "Producer"},
		{"creation_date", "CreationDate"},
		{"modification_date", "ModDate"},
	}
	for _, f := range fields {
		v := info.Key(f[1])
		if v.Kind() == pdf.String {
			meta[f[0]] = v.Text()
		} else {
			meta[f[0]] = ""
		}
	}
	return meta
}

// extractMuPDF is the layout-aware secondary parser. No metadata on this
// path.
func (p *PDFExtractor) extractMuPDF(data []byte) (string, int, map[string]string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", 0, nil, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			p.logger.Debug("page extraction failed",
				zap.Int("page", i+1), zap.Error(err))
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(pageText)
	}
	return sb.String(), doc.NumPage(), nil, nil
}
