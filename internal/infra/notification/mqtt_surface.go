package notification

import (
	"context"
	"log/slog"
	"time"

	"creaglass/config"
	"creaglass/internal/domain/entity"
	"creaglass/internal/domain/service"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
)

const (
	mqttConnectTimeout = 10 * time.Second
	mqttPublishTimeout = 5 * time.Second
	mqttDisconnectWait = 250
)

// mqttPublisher is the part of mqtt.Client the surface uses.
type mqttPublisher interface {
	Publish(topic string, qos byte, retained bool, payload any) mqtt.Token
}

// mqttSurface publishes alert commands on "<topicPrefix>/<userID>/<sessionID>".
type mqttSurface struct {
	client      mqttPublisher
	disconnect  func()
	topicPrefix string
	qos         byte
	logger      *slog.Logger
}

// NewMQTTSurface connects to the broker.
func NewMQTTSurface(cfg *config.MQTTConfig, logger *slog.Logger) (service.AlertSurface, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warn("[MQTT] Connection lost", slog.Any("error", err))
	})

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(mqttConnectTimeout) {
		return nil, errors.New("timed out connecting to MQTT broker")
	}
	if token.Error() != nil {
		return nil, errors.Wrap(token.Error(), "failed to connect to MQTT broker")
	}

	logger.Info("MQTT alert surface connected", slog.String("broker", cfg.Broker))

	surface := newMQTTSurface(client, cfg.TopicPrefix, cfg.QoS, logger)
	surface.disconnect = func() { client.Disconnect(mqttDisconnectWait) }

	return surface, nil
}

func newMQTTSurface(client mqttPublisher, topicPrefix string, qos byte, logger *slog.Logger) *mqttSurface {
	return &mqttSurface{
		client:      client,
		topicPrefix: topicPrefix,
		qos:         qos,
		logger:      logger,
	}
}

func (s *mqttSurface) topic(target entity.AlertTarget) string {
	return s.topicPrefix + "/" + target.UserID.String() + "/" + target.SessionID.String()
}

func (s *mqttSurface) PlaySound(ctx context.Context, target entity.AlertTarget, sound *service.SoundHandle) error {
	cmd := newCommand(ActionPlaySound, target)
	cmd.Sound = sound.Key
	cmd.Checksum = sound.Checksum

	return s.publish(ctx, target, cmd)
}

func (s *mqttSurface) Vibrate(ctx context.Context, target entity.AlertTarget, duration time.Duration) error {
	cmd := newCommand(ActionVibrate, target)
	cmd.DurationMs = duration.Milliseconds()

	return s.publish(ctx, target, cmd)
}

func (s *mqttSurface) HapticSuccess(ctx context.Context, target entity.AlertTarget) error {
	cmd := newCommand(ActionHaptic, target)
	cmd.Style = "success"

	return s.publish(ctx, target, cmd)
}

func (s *mqttSurface) ShowDialog(ctx context.Context, target entity.AlertTarget, title, message string) error {
	cmd := newCommand(ActionDialog, target)
	cmd.Title = title
	cmd.Message = message

	return s.publish(ctx, target, cmd)
}

func (s *mqttSurface) publish(ctx context.Context, target entity.AlertTarget, cmd *Command) error {
	payload, err := cmd.Payload()
	if err != nil {
		return err
	}

	topic := s.topic(target)
	token := s.client.Publish(topic, s.qos, false, payload)

	select {
	case <-token.Done():
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-time.After(mqttPublishTimeout):
		return errors.Errorf("timed out publishing to %s", topic)
	}
	if token.Error() != nil {
		return errors.Wrapf(token.Error(), "failed to publish to topic %s", topic)
	}

	s.logger.Debug("[MQTT] Alert published",
		slog.String("topic", topic),
		slog.String("action", cmd.Action),
	)

	return nil
}

func (s *mqttSurface) Close() error {
	if s.disconnect != nil {
		s.disconnect()
	}

	return nil
}
