package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AppPort int
	Tuning  Tuning
}

// Tuning holds the empirically chosen extraction thresholds. They are
// configurable constants, not derived values.
type Tuning struct {
	MinReadableRatio float64  `yaml:"min_readable_ratio"`
	MinTextLength    int      `yaml:"min_text_length"`
	MinOCRTextLength int      `yaml:"min_ocr_text_length"`
	MinPayloadBytes  int      `yaml:"min_payload_bytes"`
	OCRLanguages     []string `yaml:"ocr_languages"`
}

func DefaultTuning() Tuning {
	return Tuning{
		MinReadableRatio: 0.7,
		MinTextLength:    10,
		MinOCRTextLength: 5,
		MinPayloadBytes:  10,
		OCRLanguages:     []string{"spa", "eng"},
	}
}

// Load reads configuration from the environment, with an optional YAML
// tuning file pointed at by TUNING_PATH overriding the defaults.
func Load() (*Config, error) {
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	cfg := &Config{
		AppPort: appPort,
		Tuning:  DefaultTuning(),
	}
	if path := os.Getenv("TUNING_PATH"); path != "" {
		if err := loadTuning(path, &cfg.Tuning); err != nil {
			return nil, err
		}
	}
	if langs := os.Getenv("OCR_LANGUAGES"); langs != "" {
		cfg.Tuning.OCRLanguages = strings.Split(langs, ",")
	}
	return cfg, nil
}

func loadTuning(path string, t *Tuning) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return fmt.Errorf("parse tuning file: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
