package pdfextract

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cotizaciones_zafir/internal/usecase/interfaces"

	"github.com/ledongthuc/pdf"
)

// Extractor reads the plain text of a PDF document.
//
// It only handles PDFs with an embedded text layer; scanned documents come
// back empty and are reported upstream as extraction failures.

type Extractor struct{}

var _ interfaces.IPDFTextExtractor = (*Extractor)(nil)

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) ExtractText(ctx context.Context, r io.ReaderAt, size int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return sb.String(), nil
}
