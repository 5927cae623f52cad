package handler

import (
	"mime"
	"net/http"

	"creaglass/internal/delivery/api/middleware"
	"creaglass/internal/delivery/api/response"
	domainerrors "creaglass/internal/domain/errors"
	"creaglass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// documentFormField is the multipart field carrying the uploaded file
const documentFormField = "file"

// DocumentHandlerParams holds dependencies for DocumentHandler, injected by Fx.
type DocumentHandlerParams struct {
	fx.In

	DocumentUC usecase.DocumentUsecase
}

// DocumentHandler handles document uploads and downloads
type DocumentHandler struct {
	documentUC usecase.DocumentUsecase
}

// NewDocumentHandler is the constructor for DocumentHandler
func NewDocumentHandler(params DocumentHandlerParams) *DocumentHandler {
	return &DocumentHandler{documentUC: params.DocumentUC}
}

// ListDocuments returns every document, newest first
func (h *DocumentHandler) ListDocuments(c echo.Context) error {
	documents, err := h.documentUC.ListDocuments(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, documents)
}

// GetDocument returns the metadata of a document
func (h *DocumentHandler) GetDocument(c echo.Context) error {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid document ID")
	}

	document, err := h.documentUC.GetDocument(c.Request().Context(), documentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, document)
}

// UploadDocument stores the multipart file field
func (h *DocumentHandler) UploadDocument(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.InvalidSession(c)
	}

	file, err := c.FormFile(documentFormField)
	if err != nil {
		if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
			return response.HandleAppError(c, domainerrors.ErrDocumentTooLarge)
		}

		return response.BindingError(c, "INVALID_INPUT", "A file field is required")
	}

	src, err := file.Open()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Unreadable file")
	}
	defer src.Close()

	document, err := h.documentUC.UploadDocument(c.Request().Context(), &usecase.UploadDocumentInput{
		Filename:  file.Filename,
		MimeType:  file.Header.Get(echo.HeaderContentType),
		Content:   src,
		CreatedBy: userID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, document)
}

// GetDocumentURL returns where the document can be downloaded
func (h *DocumentHandler) GetDocumentURL(c echo.Context) error {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid document ID")
	}

	url, err := h.documentUC.GetDocumentURL(c.Request().Context(), documentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, url)
}

// DownloadDocument streams the document content
func (h *DocumentHandler) DownloadDocument(c echo.Context) error {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid document ID")
	}

	document, content, err := h.documentUC.OpenDocument(c.Request().Context(), documentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer content.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": document.Filename}))

	return c.Stream(http.StatusOK, document.MimeType, content)
}

// DeleteDocument removes a document and its content
func (h *DocumentHandler) DeleteDocument(c echo.Context) error {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid document ID")
	}

	if err := h.documentUC.DeleteDocument(c.Request().Context(), documentID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
