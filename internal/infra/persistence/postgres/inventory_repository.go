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

// inventoryRepository implements repository.InventoryRepository.
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (repo *inventoryRepository) ListGroups(ctx context.Context) ([]*entity.InventoryGroup, error) {
	var groupModels []*model.InventoryGroupModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&groupModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list inventory groups")
	}

	return toInventoryGroupsDomain(groupModels), nil
}

func (repo *inventoryRepository) FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.InventoryGroup, error) {
	var groupM model.InventoryGroupModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&groupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInventoryGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory group")
	}

	return toInventoryGroupDomain(&groupM), nil
}

func (repo *inventoryRepository) FindGroupsByNames(ctx context.Context, names []string) ([]*entity.InventoryGroup, error) {
	var groupModels []*model.InventoryGroupModel
	if err := repo.db.WithContext(ctx).Where("name IN ?", names).Find(&groupModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find inventory groups by name")
	}

	return toInventoryGroupsDomain(groupModels), nil
}

func (repo *inventoryRepository) CreateGroup(ctx context.Context, group *entity.InventoryGroup) error {
	groupM := &model.InventoryGroupModel{
		ID:        group.ID,
		Name:      group.Name,
		CreatedBy: group.CreatedBy,
	}

	if err := repo.db.WithContext(ctx).Create(groupM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("inventory group already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create inventory group")
	}

	group.ID = groupM.ID
	group.CreatedAt = groupM.CreatedAt

	return nil
}

func (repo *inventoryRepository) ListItems(ctx context.Context, groupID *uuid.UUID) ([]*entity.InventoryItem, error) {
	query := repo.db.WithContext(ctx).Order("name ASC")
	if groupID != nil {
		query = query.Where("group_id = ?", *groupID)
	}

	var itemModels []*model.InventoryItemModel
	if err := query.Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list inventory items")
	}

	items := make([]*entity.InventoryItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toInventoryItemDomain(itemM))
	}

	return items, nil
}

func (repo *inventoryRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	return repo.findItem(repo.db.WithContext(ctx), id)
}

func (repo *inventoryRepository) FindItemByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	return repo.findItem(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *inventoryRepository) findItem(db *gorm.DB, id uuid.UUID) (*entity.InventoryItem, error) {
	var itemM model.InventoryItemModel
	if err := db.Where("id = ?", id).First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInventoryItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory item")
	}

	return toInventoryItemDomain(&itemM), nil
}

func (repo *inventoryRepository) CreateItem(ctx context.Context, item *entity.InventoryItem) error {
	itemM := fromInventoryItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInventoryGroupNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required inventory item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create inventory item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *inventoryRepository) UpdateItem(ctx context.Context, item *entity.InventoryItem) error {
	itemM := fromInventoryItemDomain(item)

	result := repo.db.WithContext(ctx).Model(itemM).Select("*").Omit("id", "created_at", "created_by").Updates(itemM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrInventoryGroupNotFound
		}
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("stock cannot go below zero")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update inventory item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInventoryItemNotFound
	}

	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// DeleteItem removes the item and returns its last image.
func (repo *inventoryRepository) DeleteItem(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	var deleted []*model.InventoryItemModel
	if err := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&deleted).Error; err != nil {
		return nil, errors.Wrap(err, "failed to delete inventory item")
	}
	if len(deleted) == 0 {
		return nil, repository.ErrInventoryItemNotFound
	}

	return toInventoryItemDomain(deleted[0]), nil
}

func (repo *inventoryRepository) CreateHistory(ctx context.Context, history *entity.InventoryHistory) error {
	historyM := &model.InventoryHistoryModel{
		ID:            history.ID,
		ItemID:        history.ItemID,
		Action:        string(history.Action),
		Delta:         history.Delta,
		PreviousValue: history.PreviousValue,
		NewValue:      history.NewValue,
		CreatedBy:     history.CreatedBy,
	}

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create inventory history")
	}

	history.ID = historyM.ID
	history.CreatedAt = historyM.CreatedAt

	return nil
}

func (repo *inventoryRepository) ListHistory(ctx context.Context, itemID uuid.UUID) ([]*entity.InventoryHistory, error) {
	var historyModels []*model.InventoryHistoryModel
	if err := repo.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at DESC").
		Find(&historyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list inventory history")
	}

	history := make([]*entity.InventoryHistory, 0, len(historyModels))
	for _, historyM := range historyModels {
		history = append(history, &entity.InventoryHistory{
			ID:            historyM.ID,
			ItemID:        historyM.ItemID,
			Action:        entity.InventoryAction(historyM.Action),
			Delta:         historyM.Delta,
			PreviousValue: historyM.PreviousValue,
			NewValue:      historyM.NewValue,
			CreatedBy:     historyM.CreatedBy,
			CreatedAt:     historyM.CreatedAt,
		})
	}

	return history, nil
}

// --- Mapper Functions ---

func toInventoryGroupDomain(data *model.InventoryGroupModel) *entity.InventoryGroup {
	if data == nil {
		return nil
	}

	return &entity.InventoryGroup{
		ID:        data.ID,
		Name:      data.Name,
		CreatedBy: data.CreatedBy,
		CreatedAt: data.CreatedAt,
	}
}

func toInventoryGroupsDomain(data []*model.InventoryGroupModel) []*entity.InventoryGroup {
	groups := make([]*entity.InventoryGroup, 0, len(data))
	for _, groupM := range data {
		groups = append(groups, toInventoryGroupDomain(groupM))
	}

	return groups
}

func toInventoryItemDomain(data *model.InventoryItemModel) *entity.InventoryItem {
	if data == nil {
		return nil
	}

	return &entity.InventoryItem{
		ID:                data.ID,
		GroupID:           data.GroupID,
		Name:              data.Name,
		Unit:              data.Unit,
		Stock:             data.Stock,
		LowStockThreshold: data.LowStockThreshold,
		Height:            data.Height,
		Width:             data.Width,
		Thickness:         data.Thickness,
		TotalM2:           data.TotalM2,
		IdealStock:        data.IdealStock,
		Location:          data.Location,
		CreatedBy:         data.CreatedBy,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromInventoryItemDomain(data *entity.InventoryItem) *model.InventoryItemModel {
	if data == nil {
		return nil
	}

	return &model.InventoryItemModel{
		ID:                data.ID,
		GroupID:           data.GroupID,
		Name:              data.Name,
		Unit:              data.Unit,
		Stock:             data.Stock,
		LowStockThreshold: data.LowStockThreshold,
		Height:            data.Height,
		Width:             data.Width,
		Thickness:         data.Thickness,
		TotalM2:           data.TotalM2,
		IdealStock:        data.IdealStock,
		Location:          data.Location,
		CreatedBy:         data.CreatedBy,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
