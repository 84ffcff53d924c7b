package usecase

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"cotizaciones_zafir/internal/usecase/interfaces"
)

// PDFImportResult is the structured outcome of a PDF import. Failures are
// reported through it rather than as errors so callers can render partial
// extraction detail.
type PDFImportResult struct {
	Success       bool
	Message       string
	QuotesCreated int
	ExtractedData *ParsedQuote
	Errors        []string
}

// IPDFImportUseCase turns an uploaded PDF into a stored draft quote.
type IPDFImportUseCase interface {
	ImportQuote(ctx context.Context, r io.ReaderAt, size int64) PDFImportResult
}

type PDFImportUseCase struct {
	extractor interfaces.IPDFTextExtractor
	quotes    IQuoteUseCase
}

var _ IPDFImportUseCase = (*PDFImportUseCase)(nil)

func NewPDFImportUseCase(extractor interfaces.IPDFTextExtractor, quotes IQuoteUseCase) *PDFImportUseCase {
	return &PDFImportUseCase{extractor: extractor, quotes: quotes}
}

func (u *PDFImportUseCase) ImportQuote(ctx context.Context, r io.ReaderAt, size int64) PDFImportResult {
	log.Printf("[pdf][usecase] import start size=%d", size)

	text, err := u.extractor.ExtractText(ctx, r, size)
	if err != nil {
		log.Printf("[pdf][usecase] extraction failed err=%v", err)
		return PDFImportResult{
			Message: "No se pudo extraer texto del PDF",
			Errors:  []string{err.Error()},
		}
	}
	if strings.TrimSpace(text) == "" {
		return PDFImportResult{
			Message: "No se pudo extraer texto del PDF",
			Errors:  []string{"PDF vacío o no se pudo procesar"},
		}
	}

	parsed := ParseQuoteText(text)

	if parsed.ProcedureName == "" {
		return PDFImportResult{
			Message:       "Información insuficiente en el PDF",
			ExtractedData: &parsed,
			Errors:        []string{"No se pudo identificar el procedimiento"},
		}
	}
	if parsed.SurgeryDurationHours == 0 {
		return PDFImportResult{
			Message:       "Información insuficiente en el PDF",
			ExtractedData: &parsed,
			Errors:        []string{"No se pudo identificar la duración de la cirugía en horas"},
		}
	}
	if parsed.AnesthesiaType == "" {
		parsed.AnesthesiaType = "Anestesia General"
	}

	created, err := u.quotes.CreateQuote(ctx, parsed.ToQuoteCreate())
	if err != nil {
		log.Printf("[pdf][usecase] quote creation failed err=%v", err)
		return PDFImportResult{
			Message:       fmt.Sprintf("Error procesando PDF: %v", err),
			ExtractedData: &parsed,
			Errors:        []string{err.Error()},
		}
	}

	log.Printf("[pdf][usecase] import success quote_id=%s procedure=%q", created.ID, created.ProcedureName)
	return PDFImportResult{
		Success:       true,
		Message:       "Cotización creada exitosamente desde PDF",
		QuotesCreated: 1,
		ExtractedData: &parsed,
	}
}
