package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"doctext/api"
	"doctext/config"
	"doctext/extract"
	"doctext/ocr"
)

func main() {
	// =========
	// Config
	// =========
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// =========
	// Logging
	// =========
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	// =========
	// OCR engine
	// =========
	engine := ocr.NewTesseract(cfg.Tuning.OCRLanguages, logger)

	// =========
	// Extraction core
	// =========
	core := extract.NewCore(logger, extract.Options{
		MinReadableRatio: cfg.Tuning.MinReadableRatio,
		MinTextLength:    cfg.Tuning.MinTextLength,
		MinOCRTextLength: cfg.Tuning.MinOCRTextLength,
	}, engine)

	// =========
	// API server
	// =========
	server := api.NewServer(core, logger, cfg.AppPort, cfg.Tuning.MinPayloadBytes)
	if err := server.Start(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
