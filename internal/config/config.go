// Package config loads walkgen settings from a YAML file and WALKGEN_*
// environment variables. Everything has a working default; the tool runs
// with no config file at all.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

type Config struct {
	DefaultHostname string `mapstructure:"default_hostname"`
	OutputDir       string `mapstructure:"output_dir"`
	LogLevel        string `mapstructure:"log_level"`
	LogFormat       string `mapstructure:"log_format"`
	BatchWorkers    int    `mapstructure:"batch_workers"`
}

func Default() *Config {
	return &Config{
		DefaultHostname: "niac-device-01",
		OutputDir:       ".",
		LogLevel:        "info",
		LogFormat:       "text",
		BatchWorkers:    4,
	}
}

func Load(cfgFile string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	// Registering defaults also registers the keys, which AutomaticEnv
	// needs before WALKGEN_* variables can reach Unmarshal.
	v.SetDefault("default_hostname", cfg.DefaultHostname)
	v.SetDefault("output_dir", cfg.OutputDir)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)
	v.SetDefault("batch_workers", cfg.BatchWorkers)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("walkgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir())
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("WALKGEN")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func configDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("ProgramData"), "walkgen")
	case "darwin":
		return "/Library/Application Support/walkgen"
	default:
		return "/etc/walkgen"
	}
}
