package impl

import (
	"context"
	"log/slog"

	deliverycontext "creaglass/internal/delivery/context"
	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"
	"creaglass/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// routeRule names the keys one collection invalidates.
// UserScoped keys are added only when ExtractUserID resolves a user.
type routeRule struct {
	AlwaysKeys     []entity.CacheKey
	UserScopedKeys func(userID string) []entity.CacheKey
	ExtractUserID  func(event *entity.ChangeEvent) (string, bool)
}

func rootKeys(roots ...string) []entity.CacheKey {
	out := make([]entity.CacheKey, 0, len(roots))
	for _, root := range roots {
		out = append(out, entity.NewCacheKey(root))
	}

	return out
}

// routingTable is the static collection to rule lookup.
//
//nolint:gochecknoglobals
var routingTable = map[entity.Collection]routeRule{
	entity.CollectionDocuments:       {AlwaysKeys: rootKeys(keyDocuments)},
	entity.CollectionInventoryItems:  {AlwaysKeys: rootKeys(keyInventory, keyInventoryItems, keyInventoryGroups)},
	entity.CollectionInventoryGroups: {AlwaysKeys: rootKeys(keyInventory, keyInventoryItems, keyInventoryGroups)},
	entity.CollectionNotifications: {
		AlwaysKeys: []entity.CacheKey{
			entity.NewCacheKey(keyNotifications),
			entity.NewCacheKey(keyNotifications, keyUnreadCount),
		},
		UserScopedKeys: func(userID string) []entity.CacheKey {
			return []entity.CacheKey{
				entity.NewCacheKey(keyNotifications, userID),
				entity.NewCacheKey(keyNotifications, keyUnreadCount, userID),
			}
		},
		ExtractUserID: recordUserID("target_user_id"),
	},
	entity.CollectionProductions:           {AlwaysKeys: rootKeys(keyProductions, keyProductionItems)},
	entity.CollectionProductionItems:       {AlwaysKeys: rootKeys(keyProductions, keyProductionItems)},
	entity.CollectionEvents:                {AlwaysKeys: rootKeys(keyEvents)},
	entity.CollectionUsers:                 {AlwaysKeys: rootKeys(keyUsers)},
	entity.CollectionBloodPriorityMessages: {AlwaysKeys: rootKeys(keyBloodPriority)},
	entity.CollectionBloodPriorityReads: {
		AlwaysKeys: rootKeys(keyBloodPriority),
		UserScopedKeys: func(userID string) []entity.CacheKey {
			return []entity.CacheKey{entity.NewCacheKey(keyBloodPriority, keyUnread, userID)}
		},
		ExtractUserID: recordUserID("user_id"),
	},
}

// recordUserID reads field from the after image on insert and update and from the before image on delete,
// falling back to the other image.
func recordUserID(field string) func(event *entity.ChangeEvent) (string, bool) {
	return func(event *entity.ChangeEvent) (string, bool) {
		preferred, fallback := event.After, event.Before
		if event.Kind == entity.ChangeDelete {
			preferred, fallback = event.Before, event.After
		}

		for _, record := range []entity.Record{preferred, fallback} {
			raw, ok := record.String(field)
			if !ok || raw == "" {
				continue
			}
			if id, err := uuid.Parse(raw); err == nil {
				return id.String(), true
			}

			return raw, true
		}

		return "", false
	}
}

type invalidationRouter struct {
	cache  service.QueryCache
	logger *slog.Logger
}

// InvalidationRouterParams holds dependencies for the router, injected by Fx.
type InvalidationRouterParams struct {
	fx.In

	Cache  service.QueryCache
	Logger *slog.Logger
}

// NewInvalidationRouter is the constructor for invalidationRouter.
func NewInvalidationRouter(params InvalidationRouterParams) usecase.InvalidationRouter {
	return &invalidationRouter{
		cache:  params.Cache,
		logger: params.Logger,
	}
}

func (r *invalidationRouter) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// Route returns the keys event invalidates. Unknown collections yield no keys.
func (r *invalidationRouter) Route(event *entity.ChangeEvent) []entity.CacheKey {
	keys, _ := route(event)

	return keys
}

func route(event *entity.ChangeEvent) ([]entity.CacheKey, bool) {
	if event == nil {
		return nil, false
	}

	rule, ok := routingTable[event.Collection]
	if !ok {
		return nil, false
	}

	out := make([]entity.CacheKey, 0, len(rule.AlwaysKeys)+2)
	out = append(out, rule.AlwaysKeys...)
	if rule.UserScopedKeys != nil && rule.ExtractUserID != nil {
		if userID, resolved := rule.ExtractUserID(event); resolved {
			out = append(out, rule.UserScopedKeys(userID)...)
		}
	}

	return out, true
}

// Apply invalidates every routed key. Cache failures are logged and never returned.
func (r *invalidationRouter) Apply(ctx context.Context, event *entity.ChangeEvent) []entity.CacheKey {
	keys, known := route(event)
	if !known {
		collection := ""
		if event != nil {
			collection = string(event.Collection)
		}
		r.log(ctx).Warn("[Router] No routing rule for collection", slog.String("collection", collection))

		return nil
	}

	for _, key := range keys {
		if err := r.cache.Invalidate(ctx, key); err != nil {
			r.log(ctx).Warn("[Router] Failed to invalidate cache key",
				slog.String("key", key.String()),
				slog.String("event_id", event.ID),
				slog.Any("error", err),
			)
		}
	}

	r.log(ctx).Debug("[Router] Invalidated cache keys",
		slog.String("collection", string(event.Collection)),
		slog.String("kind", string(event.Kind)),
		slog.Int("keys", len(keys)),
	)

	return keys
}
