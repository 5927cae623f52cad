package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"changeFeed": map[string]any{
			"gatewayUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "CHANGEFEED_GATEWAYURL", want: "changeFeed.gatewayUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsZeroValues(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 10, cfg.BloodPriority.MinTimerSeconds)
	assert.False(t, cfg.BloodPriority.EnforceDwell)
	assert.Equal(t, "memory", cfg.Cache.Provider)
	assert.Equal(t, 5*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "log", cfg.Alert.Provider)
	assert.Equal(t, 500*time.Millisecond, cfg.Alert.DialogDelay)
	assert.Equal(t, "broker", cfg.ChangeFeed.Provider)
	assert.Equal(t, defaultFeedBufferSize, cfg.ChangeFeed.BufferSize)
	assert.Equal(t, "mem://", cfg.Documents.BucketURL)
	assert.Equal(t, 15*time.Minute, cfg.Documents.URLTTL)
	assert.Equal(t, defaultMaxUploadSize, cfg.Documents.MaxUploadSize)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		BloodPriority: &BloodPriorityConfig{MinTimerSeconds: 30, EnforceDwell: true},
		Cache:         &CacheConfig{Provider: "redis", TTL: time.Minute},
	}

	applyDefaults(cfg)

	assert.Equal(t, 30, cfg.BloodPriority.MinTimerSeconds)
	assert.True(t, cfg.BloodPriority.EnforceDwell)
	assert.Equal(t, "redis", cfg.Cache.Provider)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
}
