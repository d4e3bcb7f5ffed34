package api

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"doctext/extract"
)

const maxUploadBytes = 32 << 20

type base64Request struct {
	Data     string `json:"data"`
	Filename string `json:"filename"`
	MIMEType string `json:"mime_type"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"service": "document text extraction",
		"version": serviceVersion,
	})
}

// handleExtract accepts either multipart form data with a "file" field
// or JSON with a base64 "data" field. Caller mistakes map to 400 with a
// failure-shaped body; an exhausted fallback chain is still a 200.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	data, filename, mimeType, err := s.readPayload(r)
	if err != nil {
		s.logger.Info("rejected extract request",
			zap.String("request_id", reqID(r)), zap.Error(err))
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(data) < s.minPayloadBytes {
		writeFailure(w, http.StatusBadRequest,
			fmt.Sprintf("payload too small: %d bytes", len(data)))
		return
	}
	if mimeType == "" {
		mimeType = sniffMIME(data)
	}

	result := s.core.Extract(data, filename, mimeType)

	s.logger.Info("extraction completed",
		zap.String("request_id", reqID(r)),
		zap.String("filename", filename),
		zap.String("mime_type", mimeType),
		zap.String("method", result.Method),
		zap.Bool("success", result.Success),
		zap.Int("text_length", result.TextLength),
	)

	status := http.StatusOK
	if result.Method == extract.MethodUnsupported {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, result)
}

func (s *Server) readPayload(r *http.Request) ([]byte, string, string, error) {
	ct := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(ct, "multipart/form-data"):
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, "", "", fmt.Errorf("invalid multipart form: %w", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, "", "", errors.New(`missing "file" field`)
		}
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			return nil, "", "", fmt.Errorf("read upload: %w", err)
		}
		mimeType := header.Header.Get("Content-Type")
		if mimeType == "application/octet-stream" {
			// Generic part type, let the sniffer decide.
			mimeType = ""
		}
		return data, header.Filename, mimeType, nil

	case strings.HasPrefix(ct, "application/json"):
		var req base64Request
		if err := json.NewDecoder(io.LimitReader(r.Body, maxUploadBytes)).Decode(&req); err != nil {
			return nil, "", "", fmt.Errorf("invalid json body: %w", err)
		}
		if req.Data == "" {
			return nil, "", "", errors.New(`missing base64 "data" field`)
		}
		data, err := base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			return nil, "", "", fmt.Errorf("invalid base64 data: %w", err)
		}
		filename := req.Filename
		if filename == "" {
			filename = "unknown"
		}
		return data, filename, req.MIMEType, nil

	default:
		return nil, "", "", errors.New(`no file data provided: send multipart form data with a "file" field or JSON with a base64 "data" field`)
	}
}

func sniffMIME(data []byte) string {
	mimeType := http.DetectContentType(data)
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	return mimeType
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, &extract.ExtractionResult{
		Metadata: map[string]string{},
		Method:   "error",
		Error:    msg,
	})
}
