package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	request "enviromaster/internal/adapter/http/dto/request"
	response "enviromaster/internal/adapter/http/dto/response"
	"enviromaster/internal/domain/entities"
	"enviromaster/internal/usecase"
	"enviromaster/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDocumentPayload = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_INPUT", "Invalid document payload", http.StatusBadRequest)
)

// DocumentHandler handles HTTP requests for agreement documents: creation,
// the approval state machine and the attached PDF.

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

func (h *DocumentHandler) Create(c *gin.Context) {
	var payload request.CreateDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	doc, err := h.usecase.CreateDraft(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDocument(doc))
}

func (h *DocumentHandler) List(c *gin.Context) {
	docs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocuments(docs))
}

func (h *DocumentHandler) Get(c *gin.Context) {
	doc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocument(doc))
}

func (h *DocumentHandler) Submit(c *gin.Context) {
	h.patchStatus(c, h.usecase.Submit)
}

func (h *DocumentHandler) ApproveSalesman(c *gin.Context) {
	h.patchStatus(c, h.usecase.ApproveSalesman)
}

func (h *DocumentHandler) ApproveAdmin(c *gin.Context) {
	h.patchStatus(c, h.usecase.ApproveAdmin)
}

func (h *DocumentHandler) patchStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Document, error),
) {
	doc, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocument(doc))
}

func (h *DocumentHandler) UploadPDF(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil || len(data) == 0 {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	doc, err := h.usecase.AttachPDF(c.Request.Context(), c.Param("id"), data)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocument(doc))
}

func (h *DocumentHandler) DownloadPDF(c *gin.Context) {
	data, err := h.usecase.DownloadPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrPDFNotFound) {
			// The one genuinely user-facing error: tell the user how to
			// recover instead of just failing.
			c.JSON(http.StatusNotFound, pkg.NewDomainErrorSimple(
				"PDF_NOT_FOUND",
				"No PDF is attached to this document. Edit the document to regenerate it.",
				http.StatusNotFound,
			).ToHTTPError())
			return
		}
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Data(http.StatusOK, "application/pdf", data)
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDocumentID),
		errors.Is(err, usecase.ErrInvalidDocumentInput),
		errors.Is(err, usecase.ErrInvalidPDFPayload),
		errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidFormPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Document status does not allow this transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrPDFStoreUnavailable):
		return pkg.NewDomainErrorSimple("PDF_STORE_UNAVAILABLE", "PDF storage is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
