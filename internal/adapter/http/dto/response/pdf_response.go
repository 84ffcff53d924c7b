package response

import "cotizaciones_zafir/internal/usecase"

// PDFProcessResultResponse reports a PDF import, including partial
// extraction detail on failure so the caller can show what was recognized.
type PDFProcessResultResponse struct {
	Success       bool                 `json:"success"`
	Message       string               `json:"message"`
	QuotesCreated int                  `json:"quotes_created"`
	ExtractedData *usecase.ParsedQuote `json:"extracted_data,omitempty"`
	Errors        []string             `json:"errors,omitempty"`
}

func FromPDFImportResult(r usecase.PDFImportResult) PDFProcessResultResponse {
	return PDFProcessResultResponse{
		Success:       r.Success,
		Message:       r.Message,
		QuotesCreated: r.QuotesCreated,
		ExtractedData: r.ExtractedData,
		Errors:        r.Errors,
	}
}
