package extract

import (
	"strings"

	"go.uber.org/zap"

	"doctext/ocr"
)

// Core dispatches raw bytes to the extractor matching their MIME type.
type Core struct {
	pdf    *PDFExtractor
	text   *TextExtractor
	image  *ImageExtractor
	logger *zap.Logger
}

// NewCore creates a Core wired with all three format extractors.
func NewCore(logger *zap.Logger, opts Options, engine ocr.Engine) *Core {
	return &Core{
		pdf:    NewPDFExtractor(logger, opts),
		text:   NewTextExtractor(logger),
		image:  NewImageExtractor(logger, engine, opts),
		logger: logger,
	}
}

// Extract routes by MIME type only; there is no cross-type fallback and
// no sniffing of the bytes here. The dispatcher attaches filename and
// mime type to whatever the extractor returns and alters nothing else.
func (c *Core) Extract(data []byte, filename, mimeType string) *ExtractionResult {
	var result *ExtractionResult
	switch {
	case strings.HasPrefix(mimeType, "text/"):
		result = c.text.Extract(data)
	case mimeType == "application/pdf":
		result = c.pdf.Extract(data)
	case strings.HasPrefix(mimeType, "image/"):
		result = c.image.Extract(data, filename)
	default:
		c.logger.Info("unsupported mime type", zap.String("mime_type", mimeType))
		result = failure(MethodUnsupported, "unsupported mime type: "+mimeType)
		result.Metadata["mime_type"] = mimeType
	}
	result.Filename = filename
	result.MIMEType = mimeType
	return result
}
