package postgres

import (
	"context"

	"creaglass/internal/domain/entity"
	domainerrors "creaglass/internal/domain/errors"
	"creaglass/internal/domain/repository"
	"creaglass/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// documentRepository implements repository.DocumentRepository.
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository is the constructor for documentRepository.
func NewDocumentRepository(db *gorm.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

func (repo *documentRepository) ListDocuments(ctx context.Context) ([]*entity.Document, error) {
	var documentModels []*model.DocumentModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&documentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}

	documents := make([]*entity.Document, 0, len(documentModels))
	for _, documentM := range documentModels {
		documents = append(documents, toDocumentDomain(documentM))
	}

	return documents, nil
}

func (repo *documentRepository) FindDocumentByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	var documentM model.DocumentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&documentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to find document")
	}

	return toDocumentDomain(&documentM), nil
}

func (repo *documentRepository) CreateDocument(ctx context.Context, document *entity.Document) error {
	documentM := &model.DocumentModel{
		ID:         document.ID,
		Filename:   document.Filename,
		MimeType:   document.MimeType,
		StorageKey: document.StorageKey,
		Size:       document.Size,
		Checksum:   document.Checksum,
		CreatedBy:  document.CreatedBy,
	}

	if err := repo.db.WithContext(ctx).Create(documentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("document storage key already in use")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create document")
	}

	document.ID = documentM.ID
	document.CreatedAt = documentM.CreatedAt

	return nil
}

// DeleteDocument removes the row and returns its last image.
func (repo *documentRepository) DeleteDocument(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	var deleted []*model.DocumentModel
	if err := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&deleted).Error; err != nil {
		return nil, errors.Wrap(err, "failed to delete document")
	}
	if len(deleted) == 0 {
		return nil, repository.ErrDocumentNotFound
	}

	return toDocumentDomain(deleted[0]), nil
}

func toDocumentDomain(data *model.DocumentModel) *entity.Document {
	return &entity.Document{
		ID:         data.ID,
		Filename:   data.Filename,
		MimeType:   data.MimeType,
		StorageKey: data.StorageKey,
		Size:       data.Size,
		Checksum:   data.Checksum,
		CreatedBy:  data.CreatedBy,
		CreatedAt:  data.CreatedAt,
	}
}
