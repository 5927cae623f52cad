package repository

import (
	"context"
	"errors"

	"creaglass/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDocumentNotFound is returned when no document has the requested id.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository persists document metadata. Content is kept in blob storage.
type DocumentRepository interface {
	// ListDocuments returns every document, newest first.
	ListDocuments(ctx context.Context) ([]*entity.Document, error)
	FindDocumentByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	CreateDocument(ctx context.Context, document *entity.Document) error
	// DeleteDocument removes the row and returns it.
	DeleteDocument(ctx context.Context, id uuid.UUID) (*entity.Document, error)
}
