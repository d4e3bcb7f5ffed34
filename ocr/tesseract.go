package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"
)

// Tesseract runs OCR through the system tesseract installation.
type Tesseract struct {
	langs     []string
	available bool
	logger    *zap.Logger
}

// NewTesseract probes the tesseract installation and returns an engine
// marked unavailable when the probe fails.
func NewTesseract(langs []string, logger *zap.Logger) *Tesseract {
	t := &Tesseract{langs: langs, logger: logger}
	installed, err := gosseract.GetAvailableLanguages()
	if err != nil {
		logger.Warn("tesseract probe failed, ocr disabled", zap.Error(err))
		return t
	}
	t.available = true
	logger.Info("tesseract available",
		zap.Strings("requested_languages", langs),
		zap.Strings("installed_languages", installed))
	return t
}

func (t *Tesseract) Available() bool { return t.available }

func (t *Tesseract) Languages() []string { return t.langs }

// Recognize extracts text from an image. A fresh client per call keeps
// the engine safe for concurrent requests.
func (t *Tesseract) Recognize(image []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.langs...); err != nil {
		return "", fmt.Errorf("set languages: %w", err)
	}
	client.SetVariable("tessedit_ocr_engine_mode", "1")  // LSTM only
	client.SetVariable("preserve_interword_spaces", "1")

	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("load image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	return text, nil
}
