package extract

// Method tags reported in ExtractionResult.Method. Format extractors
// additionally report the name of the PDF parser that succeeded.
const (
	MethodNone           = "none"
	MethodUnsupported    = "unsupported"
	MethodPlainText      = "plaintext"
	MethodOCR            = "ocr"
	MethodOCRUnavailable = "ocr_unavailable"
	MethodOCRFailed      = "ocr_failed"
	MethodOCRError       = "ocr_error"
)

// ExtractionResult is the single record produced for every extraction
// request. It is serialized as-is into the HTTP response body and then
// discarded; nothing is persisted.
//
// Success implies TextLength > 0 and an empty Error. Filename and
// MIMEType are attached by the dispatcher, not by the extractors.
type ExtractionResult struct {
	Success    bool              `json:"success"`
	Text       string            `json:"text"`
	TextLength int               `json:"text_length"`
	Pages      int               `json:"pages"`
	Metadata   map[string]string `json:"metadata"`
	Method     string            `json:"method"`
	Error      string            `json:"error,omitempty"`
	Filename   string            `json:"filename,omitempty"`
	MIMEType   string            `json:"mime_type,omitempty"`
}

// Options tunes the acceptance thresholds of the fallback chains. The
// defaults are carried over from the source behavior, not re-derived.
type Options struct {
	MinReadableRatio float64
	MinTextLength    int
	MinOCRTextLength int
}

func DefaultOptions() Options {
	return Options{
		MinReadableRatio: 0.7,
		MinTextLength:    10,
		MinOCRTextLength: 5,
	}
}

func failure(method, msg string) *ExtractionResult {
	return &ExtractionResult{
		Metadata: map[string]string{},
		Method:   method,
		Error:    msg,
	}
}

func succeed(text, method string, pages int, meta map[string]string) *ExtractionResult {
	if meta == nil {
		meta = map[string]string{}
	}
	return &ExtractionResult{
		Success:    true,
		Text:       text,
		TextLength: len([]rune(text)),
		Pages:      pages,
		Metadata:   meta,
		Method:     method,
	}
}
