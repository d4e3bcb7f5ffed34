package extract

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// buildTwoPagePDF assembles a minimal uncompressed two-page PDF with
// plain Tj text objects and an Info dictionary. Object offsets are
// recorded while writing so the xref table is correct by construction.
func buildTwoPagePDF() []byte {
	pageOne := "BT /F1 12 Tf 72 720 Td (The quick brown fox jumps over the lazy dog.) Tj ET"
	pageTwo := "BT /F1 12 Tf 72 720 Td (The second page holds more plain readable prose.) Tj ET"

	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R 4 0 R] /Count 2 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
			"/Resources << /Font << /F1 7 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
			"/Resources << /Font << /F1 7 0 R >> >> /Contents 6 0 R >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(pageOne), pageOne),
		fmt.Sprintf("6 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(pageTwo), pageTwo),
		"7 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>\nendobj\n",
		"8 0 obj\n<< /Title (Quarterly Report) /Author (Jane Doe) >>\nendobj\n",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects))
	for _, obj := range objects {
		offsets = append(offsets, buf.Len())
		buf.WriteString(obj)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R /Info 8 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefOffset)
	return buf.Bytes()
}

func TestPDFExtractor_GarbageInput(t *testing.T) {
	extractor := NewPDFExtractor(zap.NewNop(), DefaultOptions())

	testCases := []struct {
		name string
		data []byte
	}{
		{"NotAPDF", []byte("not a real pdf")},
		{"Empty", nil},
		{"TruncatedHeader", []byte("%PDF-1.7")},
		{"BinaryJunk", []byte{0x25, 0x50, 0x44, 0x46, 0xff, 0xfe, 0x00, 0x01}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := extractor.Extract(tc.data)
			if result.Success {
				t.Fatal("expected failure")
			}
			if result.Method != MethodNone {
				t.Errorf("method = %q, want %q", result.Method, MethodNone)
			}
			if result.Text != "" {
				t.Errorf("text = %q, want empty", result.Text)
			}
			if result.Pages != 0 {
				t.Errorf("pages = %d, want 0", result.Pages)
			}
		})
	}
}

func TestPDFExtractor_TwoPageDocument(t *testing.T) {
	extractor := NewPDFExtractor(zap.NewNop(), DefaultOptions())

	result := extractor.Extract(buildTwoPagePDF())
	if !result.Success {
		t.Fatalf("expected success, got method %q error %q", result.Method, result.Error)
	}
	if result.Method != "ledongthuc" {
		t.Errorf("method = %q, want the primary parser", result.Method)
	}
	if result.Pages != 2 {
		t.Errorf("pages = %d, want 2", result.Pages)
	}
	if result.Error != "" {
		t.Errorf("error = %q, want empty on success", result.Error)
	}
	if result.TextLength != len([]rune(result.Text)) {
		t.Errorf("text_length = %d, want %d", result.TextLength, len([]rune(result.Text)))
	}
	if result.TextLength == 0 {
		t.Error("expected extracted text")
	}
	for _, want := range []string{"quick brown fox", "second page"} {
		if !strings.Contains(strings.ToLower(result.Text), want) {
			t.Errorf("text %q should contain %q", result.Text, want)
		}
	}
	if result.Metadata["title"] != "Quarterly Report" {
		t.Errorf("metadata title = %q, want Quarterly Report", result.Metadata["title"])
	}
	if result.Metadata["author"] != "Jane Doe" {
		t.Errorf("metadata author = %q, want Jane Doe", result.Metadata["author"])
	}
	// Fields absent from the info dictionary stay empty, never error.
	if subject, ok := result.Metadata["subject"]; !ok || subject != "" {
		t.Errorf("metadata subject = %q (present %v), want empty string", subject, ok)
	}
}

func TestPDFExtractor_AttemptContainsPanic(t *testing.T) {
	extractor := NewPDFExtractor(zap.NewNop(), DefaultOptions())

	m := pdfMethod{
		name: "exploding",
		run: func([]byte) (string, int, map[string]string, error) {
			panic("parser bug")
		},
	}
	_, _, _, err := extractor.attempt(m, []byte("data"))
	if err == nil {
		t.Fatal("expected the panic to surface as an error")
	}
	if !strings.Contains(err.Error(), "parser bug") {
		t.Errorf("error %q should carry the panic value", err)
	}
}
