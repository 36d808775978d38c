// Package config provides configuration management for the durfield application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/d-kuro/durfield/internal/utils"
	"github.com/d-kuro/durfield/pkg/duration"
	"github.com/d-kuro/durfield/pkg/field"
	"github.com/d-kuro/durfield/pkg/models"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	localConfigName = ".durfield"
	envPrefix       = "DURFIELD"
)

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" && filepath.IsAbs(xdg) {
		return filepath.Join(xdg, "durfield")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home is not available
		return filepath.Join(".", ".config", "durfield")
	}
	return filepath.Join(home, ".config", "durfield")
}

// getLocalConfigPath returns the path to the local config file if it exists.
// Returns empty string if no local config is found.
func getLocalConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	localConfigPath := filepath.Join(cwd, localConfigName+"."+configType)
	if _, err := os.Stat(localConfigPath); os.IsNotExist(err) {
		return ""
	}

	return localConfigPath
}

// mergeLocalConfig merges the local config file (.durfield.toml) from the current directory.
// Local config takes precedence over the global config, except for presets,
// which are merged by name.
func mergeLocalConfig() error {
	localConfigPath := getLocalConfigPath()
	if localConfigPath == "" {
		return nil
	}

	localViper := viper.New()
	localViper.SetConfigFile(localConfigPath)
	localViper.SetConfigType(configType)

	if err := localViper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read local config %s: %w", localConfigPath, err)
	}

	for _, key := range localViper.AllKeys() {
		if strings.HasPrefix(key, "presets.") {
			continue
		}
		viper.Set(key, localViper.Get(key))
	}
	mergePresets(localViper)

	return nil
}

// mergePresets merges presets from local config into global config.
// The preset name is the key: local overrides global, and presets
// defined on only one side are kept.
func mergePresets(localViper *viper.Viper) {
	local := localViper.GetStringMapString("presets")
	if len(local) == 0 {
		return
	}

	merged := viper.GetStringMapString("presets")
	if merged == nil {
		merged = make(map[string]string, len(local))
	}
	for name, expr := range local {
		merged[name] = expr
	}

	viper.Set("presets", merged)
}

// setDefaults registers the built-in configuration values.
func setDefaults() {
	viper.SetDefault("field.default", "")
	viper.SetDefault("field.nullable", true)
	viper.SetDefault("output.format", string(models.OutputText))
	viper.SetDefault("ui.color", true)
	viper.SetDefault("finder.preview", true)
	viper.SetDefault("batch.workers", 0)
}

// Init initializes the configuration system. With an empty path the
// global config file is used, and created with defaults if needed;
// otherwise exactly the given file is read.
func Init(path string) error {
	setDefaults()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		expanded, err := utils.ExpandPath(path)
		if err != nil {
			return fmt.Errorf("failed to expand config path: %w", err)
		}
		viper.SetConfigFile(expanded)
		viper.SetConfigType(configType)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", expanded, err)
		}
		return nil
	}

	configDir := getConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigName(configName)
	viper.SetConfigType(configType)
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			configPath := filepath.Join(configDir, configName+"."+configType)
			if err := viper.SafeWriteConfig(); err != nil {
				if err := viper.WriteConfigAs(configPath); err != nil {
					return fmt.Errorf("failed to create config file: %w", err)
				}
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Merge local config from current directory if present
	if err := mergeLocalConfig(); err != nil {
		return fmt.Errorf("failed to merge local config: %w", err)
	}

	return nil
}

// Load loads and returns the current configuration.
func Load() (*models.Config, error) {
	var cfg models.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = models.OutputText
	}
	if !cfg.Output.Format.Valid() {
		return nil, fmt.Errorf("invalid output.format %q (expected text, json or yaml)", cfg.Output.Format)
	}
	if cfg.Batch.Workers < 0 {
		return nil, fmt.Errorf("invalid batch.workers %d: must not be negative", cfg.Batch.Workers)
	}
	return &cfg, nil
}

// FieldOptions converts the [field] table into field.Options, parsing
// the default expression with the duration codec.
func FieldOptions(cfg *models.Config) (field.Options, error) {
	opts := field.Options{Nullable: cfg.Field.Nullable}
	if strings.TrimSpace(cfg.Field.Default) == "" {
		return opts, nil
	}

	d, err := duration.Parse(cfg.Field.Default)
	if err != nil {
		return field.Options{}, fmt.Errorf("invalid field.default: %w", err)
	}
	opts.Default = &d
	return opts, nil
}

// SetGlobal sets a configuration value and writes to the global config file only.
// This uses a separate viper instance to avoid writing merged local settings.
func SetGlobal(key string, value any) error {
	globalViper := viper.New()
	globalViper.SetConfigName(configName)
	globalViper.SetConfigType(configType)
	globalViper.AddConfigPath(getConfigDir())

	// Read only global config (ignore error if file doesn't exist)
	_ = globalViper.ReadInConfig()
	globalViper.Set(key, value)

	configPath := filepath.Join(getConfigDir(), configName+"."+configType)
	if err := globalViper.WriteConfigAs(configPath); err != nil {
		return err
	}

	viper.Set(key, value)
	return nil
}

// SetLocal sets a configuration value and writes to the local config file (.durfield.toml).
func SetLocal(key string, value any) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	localConfigPath := filepath.Join(cwd, localConfigName+"."+configType)

	localViper := viper.New()
	localViper.SetConfigFile(localConfigPath)
	localViper.SetConfigType(configType)

	_ = localViper.ReadInConfig()
	localViper.Set(key, value)

	if err := localViper.WriteConfigAs(localConfigPath); err != nil {
		return fmt.Errorf("failed to write local config: %w", err)
	}

	viper.Set(key, value)
	return nil
}

// ValidateValue checks values for keys whose syntax durfield understands
// before they are written.
func ValidateValue(key string, value any) error {
	s, isString := value.(string)
	switch {
	case key == "field.default" || strings.HasPrefix(key, "presets."):
		if !isString {
			return fmt.Errorf("%s must be a duration expression", key)
		}
		if key == "field.default" && strings.TrimSpace(s) == "" {
			return nil
		}
		if _, err := duration.Parse(s); err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
	case key == "output.format":
		if !models.OutputFormat(s).Valid() {
			return fmt.Errorf("invalid output.format %v (expected text, json or yaml)", value)
		}
	case key == "batch.workers":
		if n, ok := value.(int); !ok || n < 0 {
			return fmt.Errorf("invalid batch.workers %v: must be a non-negative integer", value)
		}
	}
	return nil
}

// GetValue retrieves a configuration value by key.
func GetValue(key string) any {
	return viper.Get(key)
}

// Keys returns every known configuration key.
func Keys() []string {
	return viper.AllKeys()
}

// AllSettings returns all configuration settings.
func AllSettings() map[string]any {
	return viper.AllSettings()
}
