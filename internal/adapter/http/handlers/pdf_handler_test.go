package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cotizaciones_zafir/internal/adapter/http/handlers/mocks"
	"cotizaciones_zafir/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func multipartUpload(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, mw.FormDataContentType()
}

func TestPDFHandler_UploadPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPDFImportUseCase(ctrl)
		h := NewPDFHandler(uc)

		r := gin.New()
		r.POST("/api/upload-pdf", h.UploadPDF)

		req := httptest.NewRequest(http.MethodPost, "/api/upload-pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejects non pdf extension", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPDFImportUseCase(ctrl)
		h := NewPDFHandler(uc)

		r := gin.New()
		r.POST("/api/upload-pdf", h.UploadPDF)

		body, contentType := multipartUpload(t, "cotizacion.txt", "texto plano")
		req := httptest.NewRequest(http.MethodPost, "/api/upload-pdf", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Solo se permiten archivos PDF") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("accepts uppercase extension", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPDFImportUseCase(ctrl)
		h := NewPDFHandler(uc)

		r := gin.New()
		r.POST("/api/upload-pdf", h.UploadPDF)

		uc.EXPECT().ImportQuote(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.PDFImportResult{
			Success:       true,
			Message:       "Cotización creada exitosamente desde PDF",
			QuotesCreated: 1,
		})

		body, contentType := multipartUpload(t, "COTIZACION.PDF", "%PDF-1.4 contenido")
		req := httptest.NewRequest(http.MethodPost, "/api/upload-pdf", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["success"] != true || res["quotes_created"] != float64(1) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("extraction failure surfaces in body, not status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPDFImportUseCase(ctrl)
		h := NewPDFHandler(uc)

		r := gin.New()
		r.POST("/api/upload-pdf", h.UploadPDF)

		uc.EXPECT().ImportQuote(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.PDFImportResult{
			Success: false,
			Message: "No se pudo extraer texto del PDF",
			Errors:  []string{"documento sin texto"},
		})

		body, contentType := multipartUpload(t, "escaneado.pdf", "binario")
		req := httptest.NewRequest(http.MethodPost, "/api/upload-pdf", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["success"] != false {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
