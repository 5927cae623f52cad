package impl

import (
	"context"
	"errors"
	"testing"

	"creaglass/internal/domain/entity"
	mockSvc "creaglass/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(t *testing.T) (*invalidationRouter, *mockSvc.MockQueryCache) {
	cache := mockSvc.NewMockQueryCache(t)

	router := NewInvalidationRouter(InvalidationRouterParams{Cache: cache, Logger: newDiscardLogger()})

	return router.(*invalidationRouter), cache
}

func TestInvalidationRouter_Route_TargetedNotification(t *testing.T) {
	router, _ := newTestRouter(t)
	userID := uuid.New()

	for _, kind := range []entity.ChangeKind{entity.ChangeInsert, entity.ChangeUpdate} {
		event := entity.NewChangeEvent(entity.CollectionNotifications, kind, nil, entity.Record{
			"id":             uuid.NewString(),
			"target_user_id": userID.String(),
		})

		keys := keyStrings(router.Route(event))

		assert.ElementsMatch(t, []string{
			"notifications",
			"notifications:unreadCount",
			"notifications:" + userID.String(),
			"notifications:unreadCount:" + userID.String(),
		}, keys, "kind %s", kind)
	}
}

func TestInvalidationRouter_Route_BroadcastNotification(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name  string
		event *entity.ChangeEvent
	}{
		{
			name:  "insert with null target",
			event: entity.NewChangeEvent(entity.CollectionNotifications, entity.ChangeInsert, nil, entity.Record{"target_user_id": nil}),
		},
		{
			name: "update without target on either image",
			event: entity.NewChangeEvent(entity.CollectionNotifications, entity.ChangeUpdate,
				entity.Record{"id": "n1"}, entity.Record{"id": "n1"}),
		},
		{
			name:  "delete of broadcast row",
			event: entity.NewChangeEvent(entity.CollectionNotifications, entity.ChangeDelete, entity.Record{"id": "n1", "target_user_id": ""}, nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := keyStrings(router.Route(tt.event))

			assert.Equal(t, []string{"notifications", "notifications:unreadCount"}, keys)
		})
	}
}

func TestInvalidationRouter_Route_DeleteUsesBeforeImage(t *testing.T) {
	router, _ := newTestRouter(t)
	userID := uuid.New()

	event := entity.NewChangeEvent(entity.CollectionNotifications, entity.ChangeDelete,
		entity.Record{"target_user_id": userID.String()}, nil)

	keys := keyStrings(router.Route(event))

	assert.Contains(t, keys, "notifications:"+userID.String())
	assert.Contains(t, keys, "notifications:unreadCount:"+userID.String())
}

func TestInvalidationRouter_Route_UpdatePrefersAfterImage(t *testing.T) {
	router, _ := newTestRouter(t)
	previous, current := uuid.New(), uuid.New()

	event := entity.NewChangeEvent(entity.CollectionNotifications, entity.ChangeUpdate,
		entity.Record{"target_user_id": previous.String()},
		entity.Record{"target_user_id": current.String()})

	keys := keyStrings(router.Route(event))

	assert.Contains(t, keys, "notifications:"+current.String())
	assert.NotContains(t, keys, "notifications:"+previous.String())
}

func TestInvalidationRouter_Route_StaticCollections(t *testing.T) {
	router, _ := newTestRouter(t)
	userID := uuid.New()

	tests := []struct {
		collection entity.Collection
		after      entity.Record
		expected   []string
	}{
		{entity.CollectionDocuments, entity.Record{}, []string{"documents"}},
		{entity.CollectionInventoryItems, entity.Record{}, []string{"inventory", "inventory-items", "inventory-groups"}},
		{entity.CollectionInventoryGroups, entity.Record{}, []string{"inventory", "inventory-items", "inventory-groups"}},
		{entity.CollectionProductions, entity.Record{}, []string{"productions", "production-items"}},
		{entity.CollectionProductionItems, entity.Record{}, []string{"productions", "production-items"}},
		{entity.CollectionEvents, entity.Record{}, []string{"events"}},
		{entity.CollectionUsers, entity.Record{}, []string{"users"}},
		{entity.CollectionBloodPriorityMessages, entity.Record{}, []string{"blood-priority"}},
		{
			entity.CollectionBloodPriorityReads,
			entity.Record{"user_id": userID.String()},
			[]string{"blood-priority", "blood-priority:unread:" + userID.String()},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.collection), func(t *testing.T) {
			event := entity.NewChangeEvent(tt.collection, entity.ChangeInsert, nil, tt.after)

			assert.Equal(t, tt.expected, keyStrings(router.Route(event)))
		})
	}
}

func TestInvalidationRouter_Route_UnknownCollection(t *testing.T) {
	router, _ := newTestRouter(t)

	event := entity.NewChangeEvent("audit_log", entity.ChangeInsert, nil, entity.Record{"id": "1"})

	assert.Empty(t, router.Route(event))
	assert.Empty(t, router.Route(nil))
}

func TestInvalidationRouter_Apply_InvalidatesRoutedKeys(t *testing.T) {
	router, cache := newTestRouter(t)
	ctx := context.Background()
	userID := uuid.New()

	event := entity.NewChangeEvent(entity.CollectionNotifications, entity.ChangeInsert, nil,
		entity.Record{"target_user_id": userID.String()})

	var invalidated []string
	cache.EXPECT().
		Invalidate(ctx, mock.AnythingOfType("entity.CacheKey")).
		Run(func(_ context.Context, key entity.CacheKey) {
			invalidated = append(invalidated, key.String())
		}).
		Return(nil).
		Times(4)

	keys := router.Apply(ctx, event)

	assert.Len(t, keys, 4)
	assert.ElementsMatch(t, keyStrings(keys), invalidated)
}

func TestInvalidationRouter_Apply_CacheErrorIsNotFatal(t *testing.T) {
	router, cache := newTestRouter(t)
	ctx := context.Background()

	event := entity.NewChangeEvent(entity.CollectionInventoryItems, entity.ChangeUpdate, entity.Record{}, entity.Record{})

	cache.EXPECT().
		Invalidate(ctx, mock.AnythingOfType("entity.CacheKey")).
		Return(errors.New("redis down")).
		Times(3)

	keys := router.Apply(ctx, event)

	assert.Equal(t, []string{"inventory", "inventory-items", "inventory-groups"}, keyStrings(keys))
}

func TestInvalidationRouter_Apply_UnknownCollectionSkipsCache(t *testing.T) {
	router, _ := newTestRouter(t)

	keys := router.Apply(context.Background(), entity.NewChangeEvent("audit_log", entity.ChangeInsert, nil, entity.Record{}))

	assert.Nil(t, keys)
}
