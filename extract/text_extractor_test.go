package extract

import (
	"testing"

	"go.uber.org/zap"
)

func TestTextExtractor_Encodings(t *testing.T) {
	extractor := NewTextExtractor(zap.NewNop())

	testCases := []struct {
		name         string
		data         []byte
		wantEncoding string
		wantText     string
	}{
		{
			"ValidUTF8",
			[]byte("hello world, this is a plain document"),
			"utf-8",
			"hello world, this is a plain document",
		},
		{
			"UTF8WithBOM",
			append([]byte{0xef, 0xbb, 0xbf}, []byte("signed text here")...),
			"utf-8-sig",
			"signed text here",
		},
		{
			"Latin1Accents",
			[]byte("caf\xe9 con leche, se\xf1or"),
			"latin-1",
			"café con leche, señor",
		},
		{
			"Latin1HighBytes",
			[]byte("price: 100\xa3 \xbd off"),
			"latin-1",
			"price: 100£ ½ off",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := extractor.Extract(tc.data)
			if !result.Success {
				t.Fatalf("expected success, got error %q", result.Error)
			}
			if result.Metadata["encoding"] != tc.wantEncoding {
				t.Errorf("encoding = %q, want %q", result.Metadata["encoding"], tc.wantEncoding)
			}
			if result.Text != tc.wantText {
				t.Errorf("text = %q, want %q", result.Text, tc.wantText)
			}
			if result.Pages != 1 {
				t.Errorf("pages = %d, want 1", result.Pages)
			}
			if result.Method != MethodPlainText {
				t.Errorf("method = %q, want %q", result.Method, MethodPlainText)
			}
			if result.TextLength != len([]rune(result.Text)) {
				t.Errorf("text_length = %d, want %d", result.TextLength, len([]rune(result.Text)))
			}
		})
	}
}

func TestTextExtractor_NoContent(t *testing.T) {
	extractor := NewTextExtractor(zap.NewNop())

	testCases := []struct {
		name string
		data []byte
	}{
		{"Empty", nil},
		{"WhitespaceOnly", []byte("          ")},
		{"ControlsOnly", []byte("\x00\x01\x02 \x03\x04 \x05\x06\x07\x08")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := extractor.Extract(tc.data)
			if result.Success {
				t.Fatal("expected failure when nothing survives decoding")
			}
			if result.Error == "" {
				t.Error("expected an error message")
			}
			if result.Text != "" {
				t.Errorf("text = %q, want empty", result.Text)
			}
			if result.TextLength != 0 {
				t.Errorf("text_length = %d, want 0", result.TextLength)
			}
		})
	}
}
