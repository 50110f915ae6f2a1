package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir  string `yaml:"dataDir"  envconfig:"SIMPLEDAO_DATA_DIR"`
	LogLevel string `yaml:"logLevel" envconfig:"SIMPLEDAO_LOG_LEVEL"`
	Caller   string `yaml:"caller"   envconfig:"SIMPLEDAO_CALLER"`

	// Governance defaults used by `simpledao init` when no flags override them.
	MinimumQuorum  uint64 `yaml:"minimumQuorum"  envconfig:"SIMPLEDAO_MINIMUM_QUORUM"`
	VotingDuration int64  `yaml:"votingDuration" envconfig:"SIMPLEDAO_VOTING_DURATION"`
	ExecutionDelay int64  `yaml:"executionDelay" envconfig:"SIMPLEDAO_EXECUTION_DELAY"`
}

var globalConfig = &Config{
	DataDir:        ".simpledao",
	LogLevel:       "info",
	MinimumQuorum:  2,
	VotingDuration: 86_400,
	ExecutionDelay: 3_600,
}

func LoadConfig(configFile string) (*Config, error) {
	// Load config file as YAML if provided
	if configFile == "" {
		// Check for config file in this path: ~/.simpledao/simpledao.yaml
		if homeDir, err := os.UserHomeDir(); err == nil {
			userPath := filepath.Join(homeDir, ".simpledao", "simpledao.yaml")
			if _, err := os.Stat(userPath); err == nil {
				configFile = userPath
			}
		}
	}

	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		err = yaml.Unmarshal(buf, globalConfig)
		if err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	// Load config values from environment variables
	err := envconfig.Process("simpledao", globalConfig)
	if err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}

	return globalConfig, nil
}

// GetConfig returns the global config instance
func GetConfig() *Config {
	return globalConfig
}
