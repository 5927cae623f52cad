package impl

import (
	"creaglass/internal/domain/entity"

	"github.com/google/uuid"
)

// Query cache key roots.
const (
	keyDocuments       = "documents"
	keyInventory       = "inventory"
	keyInventoryItems  = "inventory-items"
	keyInventoryGroups = "inventory-groups"
	keyNotifications   = "notifications"
	keyUnreadCount     = "unreadCount"
	keyProductions     = "productions"
	keyProductionItems = "production-items"
	keyEvents          = "events"
	keyUsers           = "users"
	keyBloodPriority   = "blood-priority"
	keyUnread          = "unread"
)

func notificationsKey(userID uuid.UUID) entity.CacheKey {
	return entity.NewCacheKey(keyNotifications, userID.String())
}

func unreadCountKey(userID uuid.UUID) entity.CacheKey {
	return entity.NewCacheKey(keyNotifications, keyUnreadCount, userID.String())
}

func unreadBloodPriorityKey(userID uuid.UUID) entity.CacheKey {
	return entity.NewCacheKey(keyBloodPriority, keyUnread, userID.String())
}

func eventsKey() entity.CacheKey {
	return entity.NewCacheKey(keyEvents)
}

func documentsKey() entity.CacheKey {
	return entity.NewCacheKey(keyDocuments)
}

func usersKey() entity.CacheKey {
	return entity.NewCacheKey(keyUsers)
}

func inventoryGroupsKey() entity.CacheKey {
	return entity.NewCacheKey(keyInventoryGroups)
}

// inventoryItemsKey scopes an item list to its group, or to every group when groupID is nil.
func inventoryItemsKey(groupID *uuid.UUID) entity.CacheKey {
	if groupID == nil {
		return entity.NewCacheKey(keyInventoryItems)
	}

	return entity.NewCacheKey(keyInventoryItems, groupID.String())
}

func inventoryKeys() []entity.CacheKey {
	return []entity.CacheKey{
		entity.NewCacheKey(keyInventory),
		entity.NewCacheKey(keyInventoryItems),
		entity.NewCacheKey(keyInventoryGroups),
	}
}
