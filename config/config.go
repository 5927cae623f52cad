package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultMinTimerSeconds    = 10
	defaultCacheTTL           = 5 * time.Second
	defaultDialogDelay        = 500 * time.Millisecond
	defaultFeedBufferSize     = 64
	defaultDocumentsBucket    = "mem://"
	defaultDocumentURLTTL     = 15 * time.Minute
	defaultMaxUploadSize      = "20MB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database *DatabaseConfig `json:"database" yaml:"database"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// ChangeFeed selects the transport realtime sessions subscribe through
	ChangeFeed *ChangeFeedConfig `json:"changeFeed" yaml:"changeFeed"`

	// PubSub configuration for change event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Cache configuration for the shared query cache
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// Alert configuration for device alert delivery
	Alert *AlertConfig `json:"alert" yaml:"alert"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	MQTT *MQTTConfig `json:"mqtt" yaml:"mqtt"`

	BloodPriority *BloodPriorityConfig `json:"bloodPriority" yaml:"bloodPriority"`

	// QRCode configuration for inventory item labels
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Documents configures where uploaded document content is stored
	Documents *DocumentsConfig `json:"documents" yaml:"documents"`
}

// DocumentsConfig defines the blob storage of uploaded documents
type DocumentsConfig struct {
	// BucketURL is a gocloud blob URL such as file:///var/lib/creaglass/documents or mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	// URLTTL is how long a signed download URL stays valid
	URLTTL        time.Duration `json:"urlTTL" yaml:"urlTTL"`
	MaxUploadSize string        `json:"maxUploadSize" yaml:"maxUploadSize"`
}

// DatabaseConfig tunes how the service uses its PostgreSQL connection
type DatabaseConfig struct {
	// AutoMigrate creates or updates the tables at startup
	AutoMigrate        bool          `json:"autoMigrate" yaml:"autoMigrate"`
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// RedisConfig defines the redis connection used by the query cache and stream transport
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTTL  time.Duration `json:"accessTTL" yaml:"accessTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// ChangeFeedConfig defines the change feed transport
type ChangeFeedConfig struct {
	// Provider type: "postgres", "redis", "websocket" or "broker"
	Provider string `json:"provider" yaml:"provider"`

	// ChannelPrefix is prepended to the collection name for LISTEN channels and stream keys
	ChannelPrefix string `json:"channelPrefix" yaml:"channelPrefix"`

	// DSN is the connection string the LISTEN connection uses (postgres provider)
	DSN string `json:"dsn" yaml:"dsn"`

	// GatewayURL is the realtime gateway endpoint (websocket provider)
	GatewayURL string `json:"gatewayUrl" yaml:"gatewayUrl"`
	GatewayKey string `json:"gatewayKey" yaml:"gatewayKey"`

	// BufferSize is the per-subscription event buffer
	BufferSize int `json:"bufferSize" yaml:"bufferSize"`

	HeartbeatInterval    time.Duration `json:"heartbeatInterval" yaml:"heartbeatInterval"`
	MinReconnectInterval time.Duration `json:"minReconnectInterval" yaml:"minReconnectInterval"`
	MaxReconnectInterval time.Duration `json:"maxReconnectInterval" yaml:"maxReconnectInterval"`
}

// PubSubConfig defines Pub/Sub configuration for change event publishing
type PubSubConfig struct {
	// Provider type: "local", "google", "redis" or "postgres"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// CacheConfig defines the query cache backend
type CacheConfig struct {
	// Provider type: "redis" or "memory"
	Provider  string        `json:"provider" yaml:"provider"`
	KeyPrefix string        `json:"keyPrefix" yaml:"keyPrefix"`
	TTL       time.Duration `json:"ttl" yaml:"ttl"`
}

// AlertConfig defines how local alerts reach a session's device
type AlertConfig struct {
	// Provider type: "fcm", "mqtt" or "log"
	Provider string `json:"provider" yaml:"provider"`

	DialogDelay time.Duration `json:"dialogDelay" yaml:"dialogDelay"`

	// SoundBucketURL is a gocloud blob URL holding the alert sound asset
	SoundBucketURL string `json:"soundBucketUrl" yaml:"soundBucketUrl"`
	SoundKey       string `json:"soundKey" yaml:"soundKey"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// MQTTConfig defines the broker used by the mqtt alert provider
type MQTTConfig struct {
	Broker      string `json:"broker" yaml:"broker"`
	ClientID    string `json:"clientId" yaml:"clientId"`
	Username    string `json:"username" yaml:"username"`
	Password    string `json:"password" yaml:"password"`
	TopicPrefix string `json:"topicPrefix" yaml:"topicPrefix"`
	QoS         byte   `json:"qos" yaml:"qos"`
}

// BloodPriorityConfig defines the acknowledgment workflow settings
type BloodPriorityConfig struct {
	MinTimerSeconds int `json:"minTimerSeconds" yaml:"minTimerSeconds"`

	// EnforceDwell makes the data layer reject confirmations before the dwell elapsed
	EnforceDwell bool `json:"enforceDwell" yaml:"enforceDwell"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills the settings that must never be zero.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.BloodPriority == nil {
		cfg.BloodPriority = &BloodPriorityConfig{}
	}
	if cfg.BloodPriority.MinTimerSeconds <= 0 {
		cfg.BloodPriority.MinTimerSeconds = defaultMinTimerSeconds
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{Provider: "memory"}
	}
	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = defaultCacheTTL
	}

	if cfg.Alert == nil {
		cfg.Alert = &AlertConfig{Provider: "log"}
	}
	if cfg.Alert.DialogDelay <= 0 {
		cfg.Alert.DialogDelay = defaultDialogDelay
	}

	if cfg.Documents == nil {
		cfg.Documents = &DocumentsConfig{}
	}
	if strings.TrimSpace(cfg.Documents.BucketURL) == "" {
		cfg.Documents.BucketURL = defaultDocumentsBucket
	}
	if cfg.Documents.URLTTL <= 0 {
		cfg.Documents.URLTTL = defaultDocumentURLTTL
	}
	if strings.TrimSpace(cfg.Documents.MaxUploadSize) == "" {
		cfg.Documents.MaxUploadSize = defaultMaxUploadSize
	}

	if cfg.ChangeFeed == nil {
		cfg.ChangeFeed = &ChangeFeedConfig{Provider: "broker"}
	}
	if cfg.ChangeFeed.BufferSize <= 0 {
		cfg.ChangeFeed.BufferSize = defaultFeedBufferSize
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
