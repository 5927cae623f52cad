package postgres

import (
	"context"
	"time"

	"creaglass/internal/domain/entity"
	domainerrors "creaglass/internal/domain/errors"
	"creaglass/internal/domain/repository"
	"creaglass/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// bloodPriorityRepository implements repository.BloodPriorityRepository.
type bloodPriorityRepository struct {
	db *gorm.DB
}

// NewBloodPriorityRepository is the constructor for bloodPriorityRepository.
func NewBloodPriorityRepository(db *gorm.DB) repository.BloodPriorityRepository {
	return &bloodPriorityRepository{db: db}
}

func (repo *bloodPriorityRepository) CreateMessage(ctx context.Context, message *entity.BloodPriorityMessage) error {
	messageM := &model.BloodPriorityMessageModel{
		ID:        message.ID,
		Title:     message.Title,
		Body:      message.Body,
		CreatedBy: message.CreatedBy,
	}

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required message information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blood priority message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

func (repo *bloodPriorityRepository) FindMessageByID(ctx context.Context, id uuid.UUID) (*entity.BloodPriorityMessage, error) {
	var messageM model.BloodPriorityMessageModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBloodPriorityMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find blood priority message")
	}

	return toBloodPriorityMessageDomain(&messageM), nil
}

func (repo *bloodPriorityRepository) ListMessages(ctx context.Context) ([]*entity.BloodPriorityMessage, error) {
	var messageModels []*model.BloodPriorityMessageModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list blood priority messages")
	}

	messages := make([]*entity.BloodPriorityMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toBloodPriorityMessageDomain(messageM))
	}

	return messages, nil
}

// FindRead reads from the primary so an open is visible to the confirm that follows it.
func (repo *bloodPriorityRepository) FindRead(ctx context.Context, messageID, userID uuid.UUID) (*entity.BloodPriorityRead, error) {
	var readM model.BloodPriorityReadModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("message_id = ? AND user_id = ?", messageID, userID).
		First(&readM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBloodPriorityReadNotFound
		}

		return nil, errors.Wrap(err, "failed to find blood priority read")
	}

	return toBloodPriorityReadDomain(&readM), nil
}

func (repo *bloodPriorityRepository) FindUserReads(ctx context.Context, userID uuid.UUID) ([]*entity.BloodPriorityRead, error) {
	var readModels []*model.BloodPriorityReadModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&readModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find user blood priority reads")
	}

	reads := make([]*entity.BloodPriorityRead, 0, len(readModels))
	for _, readM := range readModels {
		reads = append(reads, toBloodPriorityReadDomain(readM))
	}

	return reads, nil
}

// CreateRead inserts the read record. A concurrent insert of the same pair is ignored.
func (repo *bloodPriorityRepository) CreateRead(ctx context.Context, read *entity.BloodPriorityRead) error {
	readM := fromBloodPriorityReadDomain(read)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "message_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(readM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrBloodPriorityMessageNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to create blood priority read")
	}

	read.ID = readM.ID
	read.CreatedAt = readM.CreatedAt

	return nil
}

func (repo *bloodPriorityRepository) SetOpenedAt(ctx context.Context, messageID, userID uuid.UUID, openedAt time.Time) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.BloodPriorityReadModel{}).
		Where("message_id = ? AND user_id = ? AND opened_at IS NULL", messageID, userID).
		Update("opened_at", openedAt).Error; err != nil {
		return errors.Wrap(err, "failed to set opened_at")
	}

	return nil
}

// SetConfirmedAt reports whether the row changed. Already-confirmed reads are left unchanged.
func (repo *bloodPriorityRepository) SetConfirmedAt(ctx context.Context, messageID, userID uuid.UUID, confirmedAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BloodPriorityReadModel{}).
		Where("message_id = ? AND user_id = ? AND confirmed_at IS NULL", messageID, userID).
		Update("confirmed_at", confirmedAt)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to set confirmed_at")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

func toBloodPriorityMessageDomain(data *model.BloodPriorityMessageModel) *entity.BloodPriorityMessage {
	if data == nil {
		return nil
	}

	return &entity.BloodPriorityMessage{
		ID:        data.ID,
		Title:     data.Title,
		Body:      data.Body,
		CreatedBy: data.CreatedBy,
		CreatedAt: data.CreatedAt,
	}
}

func toBloodPriorityReadDomain(data *model.BloodPriorityReadModel) *entity.BloodPriorityRead {
	if data == nil {
		return nil
	}

	return &entity.BloodPriorityRead{
		ID:              data.ID,
		MessageID:       data.MessageID,
		UserID:          data.UserID,
		OpenedAt:        data.OpenedAt,
		ConfirmedAt:     data.ConfirmedAt,
		MinTimerSeconds: data.MinTimerSeconds,
		CreatedAt:       data.CreatedAt,
	}
}

func fromBloodPriorityReadDomain(data *entity.BloodPriorityRead) *model.BloodPriorityReadModel {
	if data == nil {
		return nil
	}

	return &model.BloodPriorityReadModel{
		ID:              data.ID,
		MessageID:       data.MessageID,
		UserID:          data.UserID,
		OpenedAt:        data.OpenedAt,
		ConfirmedAt:     data.ConfirmedAt,
		MinTimerSeconds: data.MinTimerSeconds,
		CreatedAt:       data.CreatedAt,
	}
}
