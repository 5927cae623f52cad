package impl

import (
	"context"
	"encoding/json"
	"log/slog"
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

// lowStockPayload is the payload of an inventory.lowStock notification.
type lowStockPayload struct {
	ItemName  string    `json:"itemName"`
	ItemID    uuid.UUID `json:"itemId"`
	Stock     float64   `json:"stock"`
	Threshold float64   `json:"threshold"`
}

type inventoryService struct {
	txManager     repository.TransactionManager
	inventoryRepo repository.InventoryRepository
	notifications usecase.NotificationUsecase
	publisher     service.ChangePublisher
	cache         service.QueryCache
	qrCodeService service.QRCodeService
	logger        *slog.Logger
}

// InventoryServiceParams holds dependencies for inventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	InventoryRepo repository.InventoryRepository
	Notifications usecase.NotificationUsecase
	Publisher     service.ChangePublisher
	Cache         service.QueryCache
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewInventoryService creates a new inventory service instance
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		txManager:     params.TxManager,
		inventoryRepo: params.InventoryRepo,
		notifications: params.Notifications,
		publisher:     params.Publisher,
		cache:         params.Cache,
		qrCodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (s *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListGroups returns the groups, seeding the defaults on first use.
func (s *inventoryService) ListGroups(ctx context.Context, userID uuid.UUID) ([]*entity.InventoryGroup, error) {
	groups, err := readThrough(ctx, s.cache, s.log(ctx), inventoryGroupsKey(),
		func(ctx context.Context) ([]*entity.InventoryGroup, error) {
			groups, err := s.inventoryRepo.ListGroups(ctx)
			if err != nil || len(groups) > 0 {
				return groups, err
			}

			return s.seedDefaultGroups(ctx, userID)
		})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory groups")
	}

	return groups, nil
}

func (s *inventoryService) seedDefaultGroups(ctx context.Context, userID uuid.UUID) ([]*entity.InventoryGroup, error) {
	var created []*entity.InventoryGroup
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewInventoryRepository()

		names := entity.DefaultInventoryGroups()
		existing, err := repo.FindGroupsByNames(ctx, names)
		if err != nil {
			return errors.Wrap(err, "failed to find default groups")
		}
		present := make(map[string]struct{}, len(existing))
		for _, group := range existing {
			present[group.Name] = struct{}{}
		}

		for _, name := range names {
			if _, ok := present[name]; ok {
				continue
			}
			group := &entity.InventoryGroup{Name: name, CreatedBy: userID}
			if err := repo.CreateGroup(ctx, group); err != nil {
				return errors.Wrapf(err, "failed to create default group %s", name)
			}
			created = append(created, group)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, group := range created {
		s.publish(ctx, entity.NewChangeEvent(entity.CollectionInventoryGroups, entity.ChangeInsert, nil, group.Record()))
	}
	s.log(ctx).Info("Seeded default inventory groups", slog.Int("created", len(created)))

	return s.inventoryRepo.ListGroups(ctx)
}

func (s *inventoryService) CreateGroup(ctx context.Context, name string, userID uuid.UUID) (*entity.InventoryGroup, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("group name is required")
	}

	group := &entity.InventoryGroup{Name: name, CreatedBy: userID}
	if err := s.inventoryRepo.CreateGroup(ctx, group); err != nil {
		return nil, errors.Wrap(err, "failed to create inventory group")
	}

	s.publish(ctx, entity.NewChangeEvent(entity.CollectionInventoryGroups, entity.ChangeInsert, nil, group.Record()))
	invalidateKeys(ctx, s.log(ctx), s.cache, inventoryKeys()...)

	return group, nil
}

func (s *inventoryService) GetGroup(ctx context.Context, groupID uuid.UUID) (*entity.InventoryGroup, error) {
	group, err := s.inventoryRepo.FindGroupByID(ctx, groupID)
	if errors.Is(err, repository.ErrInventoryGroupNotFound) {
		return nil, errors.Wrap(domainerrors.ErrInventoryGroupNotFound, groupID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find inventory group")
	}

	return group, nil
}

func (s *inventoryService) ListItems(ctx context.Context, groupID *uuid.UUID) ([]*entity.InventoryItem, error) {
	items, err := readThrough(ctx, s.cache, s.log(ctx), inventoryItemsKey(groupID),
		func(ctx context.Context) ([]*entity.InventoryItem, error) {
			return s.inventoryRepo.ListItems(ctx, groupID)
		})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory items")
	}

	return items, nil
}

func (s *inventoryService) GetItem(ctx context.Context, itemID uuid.UUID) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, mapItemError(err, itemID)
	}

	return item, nil
}

// CreateItem stores the item with its first history row. An item created at or below its threshold notifies.
func (s *inventoryService) CreateItem(ctx context.Context, input *usecase.CreateInventoryItemInput) (*entity.InventoryItem, error) {
	if err := validateItemInput(input); err != nil {
		return nil, err
	}

	item := &entity.InventoryItem{
		GroupID:           input.GroupID,
		Name:              strings.TrimSpace(input.Name),
		Unit:              input.Unit,
		Stock:             input.Stock,
		LowStockThreshold: input.LowStockThreshold,
		Height:            input.Height,
		Width:             input.Width,
		Thickness:         input.Thickness,
		TotalM2:           input.TotalM2,
		IdealStock:        input.IdealStock,
		Location:          input.Location,
		CreatedBy:         input.CreatedBy,
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewInventoryRepository()

		if err := repo.CreateItem(ctx, item); err != nil {
			return err
		}

		return repo.CreateHistory(ctx, &entity.InventoryHistory{
			ItemID:    item.ID,
			Action:    entity.InventoryActionCreate,
			Delta:     item.Stock,
			NewValue:  item.Stock,
			CreatedBy: input.CreatedBy,
		})
	})
	if err != nil {
		if errors.Is(err, repository.ErrInventoryGroupNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInventoryGroupNotFound, input.GroupID.String())
		}

		return nil, errors.Wrap(err, "failed to create inventory item")
	}

	s.publish(ctx, entity.NewChangeEvent(entity.CollectionInventoryItems, entity.ChangeInsert, nil, item.Record()))
	invalidateKeys(ctx, s.log(ctx), s.cache, inventoryKeys()...)

	if item.IsLowStock() {
		s.notifyLowStock(ctx, item)
	}

	return item, nil
}

// UpdateItem applies update under a row lock. Only a change that makes a healthy item low notifies.
func (s *inventoryService) UpdateItem(ctx context.Context, itemID uuid.UUID, update *entity.InventoryItemUpdate, userID uuid.UUID) (*entity.InventoryItem, error) {
	if update == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("update is required")
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("item name must not be empty")
	}

	return s.mutateItem(ctx, itemID, userID, entity.InventoryActionUpdate, func(item *entity.InventoryItem) {
		update.Apply(item)
	})
}

func (s *inventoryService) AdjustStock(ctx context.Context, itemID uuid.UUID, delta float64, userID uuid.UUID) (*entity.InventoryItem, error) {
	if delta == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("delta must not be zero")
	}

	return s.mutateItem(ctx, itemID, userID, entity.InventoryActionAdjustStock, func(item *entity.InventoryItem) {
		item.Stock += delta
	})
}

func (s *inventoryService) mutateItem(
	ctx context.Context,
	itemID, userID uuid.UUID,
	action entity.InventoryAction,
	mutate func(item *entity.InventoryItem),
) (*entity.InventoryItem, error) {
	var before, after entity.InventoryItem
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewInventoryRepository()

		current, err := repo.FindItemByIDForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		before = *current
		after = *current
		mutate(&after)

		if err := repo.UpdateItem(ctx, &after); err != nil {
			return err
		}
		if after.Stock == before.Stock && action != entity.InventoryActionAdjustStock {
			return nil
		}

		return repo.CreateHistory(ctx, &entity.InventoryHistory{
			ItemID:        itemID,
			Action:        action,
			Delta:         after.Stock - before.Stock,
			PreviousValue: before.Stock,
			NewValue:      after.Stock,
			CreatedBy:     userID,
		})
	})
	if err != nil {
		return nil, mapItemError(err, itemID)
	}

	s.publish(ctx, entity.NewChangeEvent(entity.CollectionInventoryItems, entity.ChangeUpdate, before.Record(), after.Record()))
	invalidateKeys(ctx, s.log(ctx), s.cache, inventoryKeys()...)

	if !before.IsLowStock() && after.IsLowStock() {
		s.notifyLowStock(ctx, &after)
	}

	s.log(ctx).Info("Inventory item changed",
		slog.String("item_id", itemID.String()),
		slog.String("action", string(action)),
		slog.Float64("stock", after.Stock),
	)

	return &after, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	deleted, err := s.inventoryRepo.DeleteItem(ctx, itemID)
	if err != nil {
		return mapItemError(err, itemID)
	}

	s.publish(ctx, entity.NewChangeEvent(entity.CollectionInventoryItems, entity.ChangeDelete, deleted.Record(), nil))
	invalidateKeys(ctx, s.log(ctx), s.cache, inventoryKeys()...)

	return nil
}

func (s *inventoryService) GetItemHistory(ctx context.Context, itemID uuid.UUID) ([]*entity.InventoryHistory, error) {
	if _, err := s.GetItem(ctx, itemID); err != nil {
		return nil, err
	}

	history, err := s.inventoryRepo.ListHistory(ctx, itemID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory history")
	}

	return history, nil
}

func (s *inventoryService) GetItemLabel(ctx context.Context, itemID uuid.UUID) ([]byte, error) {
	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrCodeService.GenerateItemLabel(item.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate item label")
	}

	return png, nil
}

// notifyLowStock broadcasts the low-stock notification. A failure does not undo the stock change.
func (s *inventoryService) notifyLowStock(ctx context.Context, item *entity.InventoryItem) {
	payload, err := json.Marshal(lowStockPayload{
		ItemName:  item.Name,
		ItemID:    item.ID,
		Stock:     item.Stock,
		Threshold: item.LowStockThreshold,
	})
	if err != nil {
		s.log(ctx).Error("Failed to encode low stock payload", slog.Any("error", err))

		return
	}

	_, err = s.notifications.CreateNotification(ctx, &usecase.CreateNotificationInput{
		Type:            entity.NotificationTypeLowStock,
		Payload:         payload,
		CreatedBySystem: true,
	})
	if err != nil {
		s.log(ctx).Error("Failed to create low stock notification",
			slog.String("item_id", item.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *inventoryService) publish(ctx context.Context, event *entity.ChangeEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	publishChange(ctx, s.log(ctx), s.publisher, event)
}

func validateItemInput(input *usecase.CreateInventoryItemInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrValidationFailed.WrapMessage("item is required")
	case strings.TrimSpace(input.Name) == "":
		return domainerrors.ErrValidationFailed.WrapMessage("item name is required")
	case input.GroupID == uuid.Nil:
		return domainerrors.ErrValidationFailed.WrapMessage("group id is required")
	case input.LowStockThreshold < 0:
		return domainerrors.ErrValidationFailed.WrapMessage("low stock threshold must not be negative")
	}

	return nil
}

func mapItemError(err error, itemID uuid.UUID) error {
	switch {
	case errors.Is(err, repository.ErrInventoryItemNotFound):
		return errors.Wrap(domainerrors.ErrInventoryItemNotFound, itemID.String())
	case errors.Is(err, repository.ErrInventoryGroupNotFound):
		return errors.Wrap(domainerrors.ErrInventoryGroupNotFound, "item group")
	default:
		return errors.Wrap(err, "inventory item operation failed")
	}
}
