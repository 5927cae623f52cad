package impl

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"creaglass/internal/domain/entity"
	domainerrors "creaglass/internal/domain/errors"
	"creaglass/internal/domain/repository"
	"creaglass/internal/domain/service"
	"creaglass/internal/infra/storage"
	mockRepo "creaglass/internal/mocks/repository"
	mockSvc "creaglass/internal/mocks/service"
	"creaglass/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

type documentServiceFixtures struct {
	service      *documentService
	documentRepo *mockRepo.MockDocumentRepository
	publisher    *mockSvc.MockChangePublisher
}

func createTestDocumentService(t *testing.T, documents service.DocumentStorage) documentServiceFixtures {
	f := documentServiceFixtures{
		documentRepo: mockRepo.NewMockDocumentRepository(t),
		publisher:    mockSvc.NewMockChangePublisher(t),
	}
	f.service = NewDocumentService(DocumentServiceParams{
		DocumentRepo: f.documentRepo,
		Storage:      documents,
		Publisher:    f.publisher,
		Cache:        newMissCache(t),
		Logger:       newDiscardLogger(),
	}).(*documentService)

	return f
}

func newMemDocumentStorage(t *testing.T) service.DocumentStorage {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return storage.NewBlobDocumentStorage(bucket, time.Minute, newDiscardLogger())
}

func TestDocumentService_UploadThenOpen(t *testing.T) {
	documents := newMemDocumentStorage(t)
	f := createTestDocumentService(t, documents)
	ctx := context.Background()
	userID := uuid.New()
	documentID := uuid.New()

	var saved *entity.Document
	f.documentRepo.EXPECT().CreateDocument(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, document *entity.Document) error {
			document.ID = documentID
			saved = document
			return nil
		}).Once()
	f.publisher.EXPECT().PublishChange(ctx, changeOn(entity.CollectionDocuments, entity.ChangeInsert)).Return(nil).Once()

	uploaded, err := f.service.UploadDocument(ctx, &usecase.UploadDocumentInput{
		Filename:  "../../etc/cutting-plan.pdf",
		MimeType:  "application/pdf",
		Content:   strings.NewReader("%PDF-1.7"),
		CreatedBy: userID,
	})
	require.NoError(t, err)
	assert.Equal(t, "cutting-plan.pdf", uploaded.Filename)
	assert.True(t, strings.HasPrefix(uploaded.StorageKey, "documents/"))
	assert.True(t, strings.HasSuffix(uploaded.StorageKey, "/cutting-plan.pdf"))
	assert.Equal(t, int64(8), uploaded.Size)

	f.documentRepo.EXPECT().FindDocumentByID(ctx, documentID).Return(saved, nil).Once()
	document, content, err := f.service.OpenDocument(ctx, documentID)
	require.NoError(t, err)
	defer content.Close()

	body, err := io.ReadAll(content)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(body))
	assert.Equal(t, "application/pdf", document.MimeType)
}

func TestDocumentService_UploadDocument_RemovesContentWhenInsertFails(t *testing.T) {
	documents := mockSvc.NewMockDocumentStorage(t)
	f := createTestDocumentService(t, documents)
	ctx := context.Background()

	var key string
	documents.EXPECT().Put(ctx, mock.Anything, defaultDocumentMime, mock.Anything).
		RunAndReturn(func(_ context.Context, k, _ string, _ io.Reader) (*service.StoredObject, error) {
			key = k
			return &service.StoredObject{Key: k, Size: 3}, nil
		}).Once()
	f.documentRepo.EXPECT().CreateDocument(ctx, mock.Anything).Return(errors.New("connection reset")).Once()
	documents.EXPECT().Delete(mock.Anything, mock.MatchedBy(func(k string) bool { return k == key })).Return(nil).Once()

	_, err := f.service.UploadDocument(ctx, &usecase.UploadDocumentInput{Filename: "notes.txt", Content: strings.NewReader("abc")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestDocumentService_UploadDocument_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.UploadDocumentInput
	}{
		{name: "nil input", input: nil},
		{name: "no content", input: &usecase.UploadDocumentInput{Filename: "a.txt"}},
		{name: "no filename", input: &usecase.UploadDocumentInput{Filename: " ", Content: strings.NewReader("a")}},
		{name: "directory name", input: &usecase.UploadDocumentInput{Filename: "..", Content: strings.NewReader("a")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestDocumentService(t, mockSvc.NewMockDocumentStorage(t))

			_, err := f.service.UploadDocument(context.Background(), tt.input)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestDocumentService_GetDocumentURL(t *testing.T) {
	documentID := uuid.New()
	document := &entity.Document{ID: documentID, StorageKey: "documents/x/plan.pdf"}

	t.Run("signed by storage", func(t *testing.T) {
		documents := mockSvc.NewMockDocumentStorage(t)
		f := createTestDocumentService(t, documents)
		f.documentRepo.EXPECT().FindDocumentByID(mock.Anything, documentID).Return(document, nil).Once()
		documents.EXPECT().SignedURL(mock.Anything, "documents/x/plan.pdf").Return("https://files.example.com/plan.pdf?signature=abc", nil).Once()

		url, err := f.service.GetDocumentURL(context.Background(), documentID)

		require.NoError(t, err)
		assert.True(t, url.Signed)
		assert.Equal(t, "https://files.example.com/plan.pdf?signature=abc", url.URL)
	})

	t.Run("falls back to the content route", func(t *testing.T) {
		f := createTestDocumentService(t, newMemDocumentStorage(t))
		f.documentRepo.EXPECT().FindDocumentByID(mock.Anything, documentID).Return(document, nil).Once()

		url, err := f.service.GetDocumentURL(context.Background(), documentID)

		require.NoError(t, err)
		assert.False(t, url.Signed)
		assert.Equal(t, "/documents/"+documentID.String()+"/content", url.URL)
	})

	t.Run("unknown document", func(t *testing.T) {
		f := createTestDocumentService(t, mockSvc.NewMockDocumentStorage(t))
		f.documentRepo.EXPECT().FindDocumentByID(mock.Anything, documentID).Return(nil, repository.ErrDocumentNotFound).Once()

		_, err := f.service.GetDocumentURL(context.Background(), documentID)

		assert.ErrorIs(t, err, domainerrors.ErrDocumentNotFound)
	})
}

func TestDocumentService_DeleteDocument_StorageFailureIsNotFatal(t *testing.T) {
	documents := mockSvc.NewMockDocumentStorage(t)
	f := createTestDocumentService(t, documents)
	ctx := context.Background()
	documentID := uuid.New()

	f.documentRepo.EXPECT().DeleteDocument(ctx, documentID).
		Return(&entity.Document{ID: documentID, StorageKey: "documents/x/plan.pdf"}, nil).Once()
	documents.EXPECT().Delete(ctx, "documents/x/plan.pdf").Return(errors.New("permission denied")).Once()
	f.publisher.EXPECT().PublishChange(ctx, changeOn(entity.CollectionDocuments, entity.ChangeDelete)).Return(nil).Once()

	require.NoError(t, f.service.DeleteDocument(ctx, documentID))
}

func TestCleanFilename(t *testing.T) {
	assert.Equal(t, "plan.pdf", cleanFilename("C:\\Users\\op\\plan.pdf"))
	assert.Equal(t, "plan.pdf", cleanFilename("/tmp/plan.pdf"))
	assert.Equal(t, "planA.pdf", cleanFilename("plan\x00A.pdf"))
	assert.Equal(t, "", cleanFilename(""))
}
