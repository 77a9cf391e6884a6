package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	docx "github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"

	"careerpilot/pkg/models"
)

// ErrUnsupportedFormat is returned when the upload extension is not one of
// the recognized document kinds.
var ErrUnsupportedFormat = errors.New("unsupported file format: use PDF, DOCX or TXT")

// Extract converts an uploaded document into a flat UTF-8 text string. The
// extraction strategy is selected by filename extension only; parse failures
// from the underlying readers propagate as extraction failures.
func Extract(doc models.UploadedDocument) (string, error) {
	switch strings.ToLower(filepath.Ext(doc.Filename)) {
	case ".pdf":
		return extractPDF(doc.Data)
	case ".docx":
		return extractDOCX(doc.Data)
	case ".txt":
		return string(doc.Data), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// extractPDF concatenates the plain text of every page in page order.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}

// extractDOCX concatenates paragraph text in document order, one paragraph
// per line.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		if para, ok := item.(*docx.Paragraph); ok {
			sb.WriteString(para.String())
			sb.WriteByte('\n')
		}
	}

	return sb.String(), nil
}
