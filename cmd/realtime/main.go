package main

import (
	"context"
	"log/slog"
	"os"

	"creaglass/config"
	"creaglass/internal/delivery"
	"creaglass/internal/delivery/api"
	apimiddleware "creaglass/internal/delivery/api/middleware"
	"creaglass/internal/delivery/api/router/handler"
	"creaglass/internal/infra/auth"
	"creaglass/internal/infra/cache"
	"creaglass/internal/infra/changefeed"
	logs "creaglass/internal/infra/log"
	"creaglass/internal/infra/notification"
	"creaglass/internal/infra/persistence/postgres"
	"creaglass/internal/infra/pubsub"
	"creaglass/internal/infra/qrcode"
	"creaglass/internal/infra/redis"
	"creaglass/internal/infra/sound"
	"creaglass/internal/infra/storage"
	"creaglass/internal/usecase"
	"creaglass/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			registerRealtimeShutdown,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			redis.New,
		),
		cache.Module,
		changefeed.Module,
		pubsub.Module,
		notification.Module,
		sound.Module,
		storage.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewNotificationRepository,
			postgres.NewBloodPriorityRepository,
			postgres.NewInventoryRepository,
			postgres.NewEventRepository,
			postgres.NewDocumentRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewSessionProvider,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewInvalidationRouter,
			impl.NewAlertDispatcher,
			impl.NewChangeFeedSubscriber,
			impl.NewRealtimeService,
			impl.NewNotificationService,
			impl.NewBloodPriorityService,
			impl.NewInventoryService,
			impl.NewEventService,
			impl.NewDocumentService,
			impl.NewUserService,
			impl.NewAuthService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			handler.NewAuthHandler,
			handler.NewRealtimeHandler,
			handler.NewNotificationHandler,
			handler.NewBloodPriorityHandler,
			handler.NewInventoryHandler,
			handler.NewPushHandler,
			handler.NewEventHandler,
			handler.NewDocumentHandler,
			handler.NewUserHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// registerRealtimeShutdown stops every live subscription before the
// transports and the database go away.
func registerRealtimeShutdown(lc fx.Lifecycle, realtime usecase.RealtimeUsecase) {
	lc.Append(fx.Hook{
		OnStop: realtime.Shutdown,
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
