package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"enviromaster/internal/adapter/http/handlers/mocks"
	"enviromaster/internal/domain/entities"
	"enviromaster/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func documentRouter(h *DocumentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/documents", h.Create)
	r.GET("/v1/documents", h.List)
	r.GET("/v1/documents/:id", h.Get)
	r.PATCH("/v1/documents/:id/submit", h.Submit)
	r.PATCH("/v1/documents/:id/approve-salesman", h.ApproveSalesman)
	r.PATCH("/v1/documents/:id/approve-admin", h.ApproveAdmin)
	r.PUT("/v1/documents/:id/pdf", h.UploadPDF)
	r.GET("/v1/documents/:id/pdf", h.DownloadPDF)
	return r
}

func TestDocumentHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := documentRouter(NewDocumentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/documents", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing customer name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := documentRouter(NewDocumentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/documents", bytes.NewBufferString(`{"agreement":{"services":{}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := documentRouter(NewDocumentHandler(uc))

		uc.EXPECT().CreateDraft(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateDocumentCommand{})).DoAndReturn(
			func(_ any, cmd usecase.CreateDocumentCommand) (entities.Document, error) {
				if cmd.CustomerName != "Acme Diner" {
					t.Fatalf("unexpected customer: %q", cmd.CustomerName)
				}
				return entities.Document{ID: "doc-1", CustomerName: cmd.CustomerName, Status: entities.DocumentStatusDraft}, nil
			},
		)

		body := `{"customer_name":"Acme Diner","salesman":"pat","agreement":{"services":{"carpet":{"form":{"area_sq_ft":1200}}},"contract_months":12}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/documents", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != "draft" || resp["has_pdf"] != false {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}

func TestDocumentHandler_StatusRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("submit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := documentRouter(NewDocumentHandler(uc))

		uc.EXPECT().Submit(gomock.Any(), "doc-1").Return(entities.Document{ID: "doc-1", Status: entities.DocumentStatusPendingApproval}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/documents/doc-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := documentRouter(NewDocumentHandler(uc))

		uc.EXPECT().ApproveAdmin(gomock.Any(), "doc-1").Return(entities.Document{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/documents/doc-1/approve-admin", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("missing document maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := documentRouter(NewDocumentHandler(uc))

		uc.EXPECT().ApproveSalesman(gomock.Any(), "doc-9").Return(entities.Document{}, usecase.ErrDocumentNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/documents/doc-9/approve-salesman", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDocumentHandler_PDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := documentRouter(NewDocumentHandler(uc))

		data := []byte("%PDF-1.7 fake")
		uc.EXPECT().AttachPDF(gomock.Any(), "doc-1", data).Return(entities.Document{ID: "doc-1", PDFKey: "documents/doc-1.pdf"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/documents/doc-1/pdf", bytes.NewReader(data))
		req.Header.Set("Content-Type", "application/pdf")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("upload with empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := documentRouter(NewDocumentHandler(uc))

		req := httptest.NewRequest(http.MethodPut, "/v1/documents/doc-1/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("upload with storage unconfigured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := documentRouter(NewDocumentHandler(uc))

		uc.EXPECT().AttachPDF(gomock.Any(), "doc-1", gomock.Any()).
			Return(entities.Document{}, usecase.ErrPDFStoreUnavailable)

		req := httptest.NewRequest(http.MethodPut, "/v1/documents/doc-1/pdf", bytes.NewReader([]byte("%PDF-1.7 fake")))
		req.Header.Set("Content-Type", "application/pdf")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("download", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := documentRouter(NewDocumentHandler(uc))

		data := []byte("%PDF-1.7 fake")
		uc.EXPECT().DownloadPDF(gomock.Any(), "doc-1").Return(data, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/documents/doc-1/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("expected pdf content type, got %q", ct)
		}
		if !bytes.Equal(w.Body.Bytes(), data) {
			t.Fatalf("unexpected body: %s", w.Body.Bytes())
		}
	})

	t.Run("download without pdf explains how to recover", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := documentRouter(NewDocumentHandler(uc))

		uc.EXPECT().DownloadPDF(gomock.Any(), "doc-1").Return(nil, usecase.ErrPDFNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/documents/doc-1/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("Edit the document to regenerate it")) {
			t.Fatalf("expected recovery hint, got %s", w.Body.String())
		}
	})
}

func TestDocumentHandler_ListAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := documentRouter(NewDocumentHandler(uc))

		uc.EXPECT().List(gomock.Any()).Return([]entities.Document{
			{ID: "doc-1", Status: entities.DocumentStatusDraft},
			{ID: "doc-2", Status: entities.DocumentStatusApprovedAdmin, PDFKey: "documents/doc-2.pdf"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/documents", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp) != 2 || resp[1]["has_pdf"] != true {
			t.Fatalf("unexpected body: %v", resp)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := documentRouter(NewDocumentHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "doc-9").Return(entities.Document{}, usecase.ErrDocumentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/documents/doc-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
