package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"creaglass/internal/domain/entity"
	domainerrors "creaglass/internal/domain/errors"
	mockUc "creaglass/internal/mocks/usecase"
	"creaglass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDocumentHandler(t *testing.T) (*DocumentHandler, *mockUc.MockDocumentUsecase) {
	uc := mockUc.NewMockDocumentUsecase(t)

	return NewDocumentHandler(DocumentHandlerParams{DocumentUC: uc}), uc
}

// multipartBody encodes a single file field and returns the body with its content type.
func multipartBody(t *testing.T, field, filename, contentType, content string) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.String(), w.FormDataContentType()
}

func TestDocumentHandler_UploadDocument(t *testing.T) {
	t.Run("stores file field", func(t *testing.T) {
		h, uc := createTestDocumentHandler(t)
		session := testSession()
		body, contentType := multipartBody(t, "file", "cutlist.pdf", "application/pdf", "%PDF-1.7")
		c, rec := newContext(t, http.MethodPost, "/documents", body, session)
		c.Request().Header.Set(echo.HeaderContentType, contentType)

		var uploaded string
		uc.EXPECT().UploadDocument(mock.Anything, mock.MatchedBy(func(in *usecase.UploadDocumentInput) bool {
			return in.Filename == "cutlist.pdf" && in.MimeType == "application/pdf" && in.CreatedBy == session.UserID
		})).RunAndReturn(func(_ context.Context, in *usecase.UploadDocumentInput) (*entity.Document, error) {
			content, err := io.ReadAll(in.Content)
			if err != nil {
				return nil, err
			}
			uploaded = string(content)

			return &entity.Document{ID: uuid.New(), Filename: in.Filename, MimeType: in.MimeType, Size: int64(len(content))}, nil
		}).Once()

		require.NoError(t, h.UploadDocument(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "%PDF-1.7", uploaded)
	})

	t.Run("missing file field", func(t *testing.T) {
		h, _ := createTestDocumentHandler(t)
		body, contentType := multipartBody(t, "attachment", "cutlist.pdf", "application/pdf", "%PDF-1.7")
		c, rec := newContext(t, http.MethodPost, "/documents", body, testSession())
		c.Request().Header.Set(echo.HeaderContentType, contentType)

		require.NoError(t, h.UploadDocument(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		h, _ := createTestDocumentHandler(t)
		c, rec := newContext(t, http.MethodPost, "/documents", "", nil)

		require.NoError(t, h.UploadDocument(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestDocumentHandler_GetDocumentURL(t *testing.T) {
	h, uc := createTestDocumentHandler(t)
	documentID := uuid.New()
	c, rec := newContext(t, http.MethodGet, "/documents/"+documentID.String()+"/url", "", testSession())
	c.SetParamNames("id")
	c.SetParamValues(documentID.String())
	uc.EXPECT().GetDocumentURL(mock.Anything, documentID).
		Return(&usecase.DocumentURL{URL: "/documents/" + documentID.String() + "/content"}, nil).Once()

	require.NoError(t, h.GetDocumentURL(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"/documents/`+documentID.String()+`/content","signed":false}`, string(decodeEnvelope(t, rec).Data))
}

func TestDocumentHandler_DownloadDocument(t *testing.T) {
	t.Run("streams content as attachment", func(t *testing.T) {
		h, uc := createTestDocumentHandler(t)
		documentID := uuid.New()
		c, rec := newContext(t, http.MethodGet, "/documents/"+documentID.String()+"/content", "", testSession())
		c.SetParamNames("id")
		c.SetParamValues(documentID.String())
		document := &entity.Document{ID: documentID, Filename: "cut list.pdf", MimeType: "application/pdf"}
		uc.EXPECT().OpenDocument(mock.Anything, documentID).
			Return(document, io.NopCloser(strings.NewReader("%PDF-1.7")), nil).Once()

		require.NoError(t, h.DownloadDocument(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, `attachment; filename="cut list.pdf"`, rec.Header().Get(echo.HeaderContentDisposition))
		assert.Equal(t, "%PDF-1.7", rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		h, uc := createTestDocumentHandler(t)
		documentID := uuid.New()
		c, rec := newContext(t, http.MethodGet, "/documents/"+documentID.String()+"/content", "", testSession())
		c.SetParamNames("id")
		c.SetParamValues(documentID.String())
		uc.EXPECT().OpenDocument(mock.Anything, documentID).
			Return(nil, nil, domainerrors.ErrDocumentNotFound.WrapMessage("open document")).Once()

		require.NoError(t, h.DownloadDocument(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "DOCUMENT_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestDocumentHandler_DeleteDocument(t *testing.T) {
	h, uc := createTestDocumentHandler(t)
	documentID := uuid.New()
	c, rec := newContext(t, http.MethodDelete, "/documents/"+documentID.String(), "", testSession())
	c.SetParamNames("id")
	c.SetParamValues(documentID.String())
	uc.EXPECT().DeleteDocument(mock.Anything, documentID).Return(nil).Once()

	require.NoError(t, h.DeleteDocument(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
