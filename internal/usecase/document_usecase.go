package usecase

import (
	"context"
	"io"

	"creaglass/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadDocumentInput carries an uploaded file.
type UploadDocumentInput struct {
	Filename  string
	MimeType  string
	Content   io.Reader
	CreatedBy uuid.UUID
}

// DocumentURL is where a document can be downloaded. Signed is false when the URL points back at this service.
type DocumentURL struct {
	URL    string `json:"url"`
	Signed bool   `json:"signed"`
}

// DocumentUsecase stores documents in blob storage and their metadata in the database.
type DocumentUsecase interface {
	ListDocuments(ctx context.Context) ([]*entity.Document, error)
	GetDocument(ctx context.Context, documentID uuid.UUID) (*entity.Document, error)
	UploadDocument(ctx context.Context, input *UploadDocumentInput) (*entity.Document, error)

	// GetDocumentURL returns a signed URL, or the download route when the storage cannot sign.
	GetDocumentURL(ctx context.Context, documentID uuid.UUID) (*DocumentURL, error)

	// OpenDocument returns the document with a reader over its content. Callers close the reader.
	OpenDocument(ctx context.Context, documentID uuid.UUID) (*entity.Document, io.ReadCloser, error)

	DeleteDocument(ctx context.Context, documentID uuid.UUID) error
}
