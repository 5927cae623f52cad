package notification

import (
	"context"
	"log/slog"

	"creaglass/config"
	"creaglass/internal/domain/constants"
	"creaglass/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SurfaceParams holds dependencies for AlertSurface, injected by Fx
type SurfaceParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAlertSurface creates the AlertSurface selected by configuration
func NewAlertSurface(params SurfaceParams) (service.AlertSurface, error) {
	cfg := params.Config
	logger := params.Logger

	var surface service.AlertSurface
	var err error

	switch cfg.Alert.Provider {
	case "", constants.AlertProviderLog:
		logger.Info("Using log alert surface")

		return NewLogSurface(logger), nil

	case constants.AlertProviderFCM:
		if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
			return nil, errors.New("firebase credentials are required for fcm alerts")
		}
		logger.Info("Using FCM alert surface", slog.String("project_id", cfg.Firebase.ProjectID))

		surface, err = NewFCMSurface(params.Ctx, cfg.Firebase.CredentialsPath, logger)

	case constants.AlertProviderMQTT:
		if cfg.MQTT == nil || cfg.MQTT.Broker == "" {
			return nil, errors.New("mqtt broker is required for mqtt alerts")
		}

		surface, err = NewMQTTSurface(cfg.MQTT, logger)

	default:
		return nil, errors.Errorf("unknown alert provider: %s", cfg.Alert.Provider)
	}
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing AlertSurface")

			return surface.Close()
		},
	})

	return surface, nil
}

// Module provides the alert surface FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAlertSurface),
)
