package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port                int              `json:"port"`
	LogConfig           logger.LogConfig `json:"log_config"`
	AI                  AIConfig         `json:"ai"`
	Samples             []SampleConfig   `json:"samples"`
	ArtifactStore       ArtifactStore    `json:"artifact_store"`
	ArtifactKeepHours   int              `json:"artifact_keep_hours"`
	ArtifactCleanupCron string           `json:"artifact_cleanup_cron"`
	AnalyzeCooldownMS   int              `json:"analyze_cooldown_ms"`
	CORSAllowOrigins    []string         `json:"cors_allow_origins"`
}

type AIConfig struct {
	Provider   string                 `json:"provider"`
	Model      string                 `json:"model"`
	TimeoutSec int                    `json:"timeout_sec"`
	Data       map[string]interface{} `json:"data"`
}

// SampleConfig names one bundled process flow diagram. The list order is the
// display order.
type SampleConfig struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type ArtifactStore struct {
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.AI.Provider == "" {
		return nil, fmt.Errorf("ai.provider is required")
	}
	if cfg.AI.Model == "" {
		return nil, fmt.Errorf("ai.model is required")
	}
	if cfg.AI.TimeoutSec == 0 {
		cfg.AI.TimeoutSec = 60
	}
	if len(cfg.Samples) == 0 {
		return nil, fmt.Errorf("at least one sample is required")
	}
	for _, sample := range cfg.Samples {
		if sample.Name == "" || sample.Path == "" {
			return nil, fmt.Errorf("sample name and path are required")
		}
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	if cfg.ArtifactStore.Type == "" {
		cfg.ArtifactStore.Type = "local"
		cfg.ArtifactStore.Data = map[string]interface{}{"dir": "artifacts"}
	}
	if cfg.ArtifactKeepHours == 0 {
		cfg.ArtifactKeepHours = 24
	}
	if cfg.ArtifactCleanupCron == "" {
		cfg.ArtifactCleanupCron = "30 * * * *"
	}
	return &cfg, nil
}
