package extract

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"go.uber.org/zap"
	_ "golang.org/x/image/webp"

	"doctext/ocr"
	"doctext/textproc"
)

// ImageExtractor delegates to the configured OCR engine. The three
// failure methods are deliberately distinct: the engine being absent,
// the engine finding nothing, and the engine blowing up are different
// conditions for operators and callers alike.
type ImageExtractor struct {
	logger *zap.Logger
	engine ocr.Engine
	opts   Options
}

func NewImageExtractor(logger *zap.Logger, engine ocr.Engine, opts Options) *ImageExtractor {
	return &ImageExtractor{logger: logger, engine: engine, opts: opts}
}

func (e *ImageExtractor) Extract(data []byte, filename string) *ExtractionResult {
	if e.engine == nil || !e.engine.Available() {
		return failure(MethodOCRUnavailable, "ocr engine is not available in this deployment")
	}

	meta := map[string]string{}
	if cfg, format, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		meta["image_format"] = format
		meta["image_size"] = fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)
	}

	raw, err := e.engine.Recognize(data)
	if err != nil {
		e.logger.Warn("ocr failed",
			zap.String("filename", filename), zap.Error(err))
		res := failure(MethodOCRError, "ocr processing failed")
		res.Metadata = meta
		return res
	}

	clean := textproc.Normalize(raw)
	if len([]rune(clean)) <= e.opts.MinOCRTextLength {
		res := failure(MethodOCRFailed, "ocr found no usable text")
		res.Metadata = meta
		return res
	}

	meta["ocr"] = "true"
	meta["ocr_languages"] = strings.Join(e.engine.Languages(), "+")
	text := fmt.Sprintf("[Image: %s]\n\n%s", filename, clean)
	return succeed(text, MethodOCR, 1, meta)
}
