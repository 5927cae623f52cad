package impl

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	deliverycontext "creaglass/internal/delivery/context"
	"creaglass/internal/domain/entity"
	domainerrors "creaglass/internal/domain/errors"
	"creaglass/internal/domain/repository"
	"creaglass/internal/domain/service"
	"creaglass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	documentKeyRoot     = "documents"
	defaultDocumentMime = "application/octet-stream"
)

type documentService struct {
	documentRepo repository.DocumentRepository
	storage      service.DocumentStorage
	publisher    service.ChangePublisher
	cache        service.QueryCache
	logger       *slog.Logger
}

// DocumentServiceParams holds dependencies for documentService, injected by Fx.
type DocumentServiceParams struct {
	fx.In

	DocumentRepo repository.DocumentRepository
	Storage      service.DocumentStorage
	Publisher    service.ChangePublisher
	Cache        service.QueryCache
	Logger       *slog.Logger
}

// NewDocumentService creates a new document service instance
func NewDocumentService(params DocumentServiceParams) usecase.DocumentUsecase {
	return &documentService{
		documentRepo: params.DocumentRepo,
		storage:      params.Storage,
		publisher:    params.Publisher,
		cache:        params.Cache,
		logger:       params.Logger,
	}
}

func (s *documentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListDocuments returns every document, newest first, through the query cache.
func (s *documentService) ListDocuments(ctx context.Context) ([]*entity.Document, error) {
	documents, err := readThrough(ctx, s.cache, s.log(ctx), documentsKey(), s.documentRepo.ListDocuments)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}

	return documents, nil
}

func (s *documentService) GetDocument(ctx context.Context, documentID uuid.UUID) (*entity.Document, error) {
	document, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, mapDocumentError(err, documentID)
	}

	return document, nil
}

// UploadDocument stores the content first and the row second. A failed insert removes the stored content.
func (s *documentService) UploadDocument(ctx context.Context, input *usecase.UploadDocumentInput) (*entity.Document, error) {
	if input == nil || input.Content == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("document content is required")
	}
	filename := cleanFilename(input.Filename)
	if filename == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("document filename is required")
	}
	mimeType := strings.TrimSpace(input.MimeType)
	if mimeType == "" {
		mimeType = defaultDocumentMime
	}

	key := path.Join(documentKeyRoot, uuid.NewString(), filename)
	stored, err := s.storage.Put(ctx, key, mimeType, input.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store document content")
	}

	document := &entity.Document{
		Filename:   filename,
		MimeType:   mimeType,
		StorageKey: stored.Key,
		Size:       stored.Size,
		Checksum:   stored.Checksum,
		CreatedBy:  input.CreatedBy,
	}
	if err := s.documentRepo.CreateDocument(ctx, document); err != nil {
		if delErr := s.storage.Delete(context.WithoutCancel(ctx), stored.Key); delErr != nil {
			s.log(ctx).Warn("Failed to remove orphaned document content",
				slog.String("key", stored.Key),
				slog.Any("error", delErr),
			)
		}

		return nil, errors.Wrap(err, "failed to create document")
	}

	s.publish(ctx, entity.NewChangeEvent(entity.CollectionDocuments, entity.ChangeInsert, nil, document.Record()))
	invalidateKeys(ctx, s.log(ctx), s.cache, documentsKey())

	s.log(ctx).Info("Document uploaded",
		slog.String("document_id", document.ID.String()),
		slog.String("filename", filename),
		slog.Int64("size", document.Size),
	)

	return document, nil
}

// GetDocumentURL falls back to the content route of this service when the storage cannot sign.
func (s *documentService) GetDocumentURL(ctx context.Context, documentID uuid.UUID) (*usecase.DocumentURL, error) {
	document, err := s.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	url, err := s.storage.SignedURL(ctx, document.StorageKey)
	if errors.Is(err, service.ErrSignedURLUnsupported) {
		return &usecase.DocumentURL{URL: "/" + path.Join(documentKeyRoot, document.ID.String(), "content")}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign document url")
	}

	return &usecase.DocumentURL{URL: url, Signed: true}, nil
}

func (s *documentService) OpenDocument(ctx context.Context, documentID uuid.UUID) (*entity.Document, io.ReadCloser, error) {
	document, err := s.GetDocument(ctx, documentID)
	if err != nil {
		return nil, nil, err
	}

	content, err := s.storage.Open(ctx, document.StorageKey)
	if errors.Is(err, service.ErrObjectNotFound) {
		s.log(ctx).Error("Document content missing", slog.String("document_id", documentID.String()), slog.String("key", document.StorageKey))

		return nil, nil, errors.Wrap(domainerrors.ErrDocumentNotFound, "content missing")
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open document content")
	}

	return document, content, nil
}

// DeleteDocument removes the row, then the content. Content left behind is logged, not returned.
func (s *documentService) DeleteDocument(ctx context.Context, documentID uuid.UUID) error {
	deleted, err := s.documentRepo.DeleteDocument(ctx, documentID)
	if err != nil {
		return mapDocumentError(err, documentID)
	}

	if err := s.storage.Delete(ctx, deleted.StorageKey); err != nil {
		s.log(ctx).Warn("Failed to delete document content",
			slog.String("document_id", documentID.String()),
			slog.String("key", deleted.StorageKey),
			slog.Any("error", err),
		)
	}

	s.publish(ctx, entity.NewChangeEvent(entity.CollectionDocuments, entity.ChangeDelete, deleted.Record(), nil))
	invalidateKeys(ctx, s.log(ctx), s.cache, documentsKey())

	return nil
}

func (s *documentService) publish(ctx context.Context, event *entity.ChangeEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	publishChange(ctx, s.log(ctx), s.publisher, event)
}

// cleanFilename keeps the last path element of name and drops separators and control characters.
func cleanFilename(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	name = path.Base(name)
	if name == "." || name == "/" || name == ".." {
		return ""
	}

	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}

		return r
	}, name)
}

func mapDocumentError(err error, documentID uuid.UUID) error {
	if errors.Is(err, repository.ErrDocumentNotFound) {
		return errors.Wrap(domainerrors.ErrDocumentNotFound, documentID.String())
	}

	return errors.Wrap(err, "document operation failed")
}
