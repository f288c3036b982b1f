package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// data sources
	LocalDataDir       string `toml:"local_data_dir"`
	DriveFolderID      string `toml:"drive_folder_id"`
	StatsDatasetName   string `toml:"stats_dataset_name"`
	CatalogDatasetName string `toml:"catalog_dataset_name"`
	// aggregation
	AggregationMonths int `toml:"aggregation_months"`
	// plan generation
	GeminiModel    string `toml:"gemini_model"`
	PromptFilePath string `toml:"prompt_file_path"`
	// publishing
	HevyBaseURL    string `toml:"hevy_base_url"`
	BaseFolderName string `toml:"base_folder_name"`
	DryRun         bool   `toml:"dry_run"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlFile Toml
	if _, err := toml.DecodeFile(path, &tomlFile); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := tomlFile.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env %s missing", env)
	}

	cfg.Environment = env
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.AggregationMonths <= 0 {
		c.AggregationMonths = 6
	}
	if c.GeminiModel == "" {
		c.GeminiModel = "gemini-flash-latest"
	}
	if c.HevyBaseURL == "" {
		c.HevyBaseURL = "https://api.hevyapp.com"
	}
	if c.BaseFolderName == "" {
		c.BaseFolderName = "AI Fitness"
	}
	if c.StatsDatasetName == "" {
		c.StatsDatasetName = "hevy_stats.csv"
	}
	if c.CatalogDatasetName == "" {
		c.CatalogDatasetName = "HEVY APP exercises.csv"
	}
	if c.PromptFilePath == "" {
		c.PromptFilePath = "./MONTHLY_PROMPT_TEXT.txt"
	}
}
