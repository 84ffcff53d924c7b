package handlers

import (
	response "cotizaciones_zafir/internal/adapter/http/dto/response"
	"cotizaciones_zafir/internal/usecase"
	"cotizaciones_zafir/pkg"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// PDFHandler receives uploaded quote PDFs and turns them into draft quotes.

type PDFHandler struct {
	usecase usecase.IPDFImportUseCase
}

func NewPDFHandler(uc usecase.IPDFImportUseCase) *PDFHandler {
	return &PDFHandler{usecase: uc}
}

// UploadPDF imports the uploaded file. Extraction or parsing failures are
// reported in the result body, not as HTTP errors, so the caller can show
// what was recognized.
func (h *PDFHandler) UploadPDF(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		log.Printf("[pdf][handler] missing file err=%v", err)
		appErr := pkg.NewDomainErrorSimple("MISSING_FILE", "Se requiere un archivo PDF", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		appErr := pkg.NewDomainErrorSimple("INVALID_FILE_TYPE", "Solo se permiten archivos PDF", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := header.Open()
	if err != nil {
		log.Printf("[pdf][handler] open failed file=%s err=%v", header.Filename, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Ocurrió un error interno", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	result := h.usecase.ImportQuote(c.Request.Context(), file, header.Size)
	log.Printf("[pdf][handler] import done file=%s success=%v created=%d", header.Filename, result.Success, result.QuotesCreated)

	c.JSON(http.StatusOK, response.FromPDFImportResult(result))
}
