// Package config discovers and merges textstats configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/textstats/internal/output"
	"github.com/temirov/textstats/internal/types"
	"github.com/temirov/textstats/internal/utils"
)

const (
	// DefaultTop is the number of ranked words shown when neither --top nor configuration sets it.
	DefaultTop = 10
	// DefaultTokenizerModel is the model used for token estimates when none is configured.
	DefaultTokenizerModel = "gpt-4o"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
}

// ApplicationConfiguration holds the defaults read from configuration files.
type ApplicationConfiguration struct {
	Top       *int               `mapstructure:"top"`
	Format    string             `mapstructure:"format"`
	Color     string             `mapstructure:"color"`
	Clipboard *bool              `mapstructure:"clipboard"`
	Tokens    TokenConfiguration `mapstructure:"tokens"`
}

// TokenConfiguration controls token estimate defaults.
type TokenConfiguration struct {
	Enabled *bool  `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
}

// Settings are the resolved values used by a single invocation.
type Settings struct {
	Top            int
	Format         string
	Color          string
	Clipboard      bool
	TokensEnabled  bool
	TokenizerModel string
}

// LoadApplicationConfiguration loads configuration from global and local files.
// Local values override global ones.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, err := os.UserHomeDir(); err == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName)
		globalConfig, loadErr := loadConfigurationFromPath(globalPath)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath := filepath.Join(workingDirectory, utils.LocalConfigFileName)
	localConfig, loadErr := loadConfigurationFromPath(localPath)
	if loadErr != nil {
		return ApplicationConfiguration{}, loadErr
	}
	merged = merged.Merge(localConfig)

	if validationErr := merged.Validate(); validationErr != nil {
		return ApplicationConfiguration{}, validationErr
	}
	return merged, nil
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	reader.SetConfigType(utils.ConfigFileType)
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return config, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	if override.Top != nil {
		result.Top = cloneInt(override.Top)
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	result.Tokens = result.Tokens.merge(override.Tokens)
	return result
}

func (config TokenConfiguration) merge(override TokenConfiguration) TokenConfiguration {
	result := config
	if override.Enabled != nil {
		result.Enabled = cloneBool(override.Enabled)
	}
	if override.Model != "" {
		result.Model = override.Model
	}
	return result
}

// Validate rejects values the renderer cannot honour.
func (config ApplicationConfiguration) Validate() error {
	if config.Top != nil && *config.Top < 0 {
		return fmt.Errorf("invalid top value %d: must not be negative", *config.Top)
	}
	if config.Format != "" && !output.IsSupportedFormat(config.Format) {
		return fmt.Errorf("invalid format value '%s'", config.Format)
	}
	if !output.IsSupportedColorMode(config.Color) {
		return fmt.Errorf("invalid color value '%s'", config.Color)
	}
	return nil
}

// Settings applies built-in defaults to every unset value.
func (config ApplicationConfiguration) Settings() Settings {
	settings := Settings{
		Top:            DefaultTop,
		Format:         types.FormatRaw,
		Color:          types.ColorAuto,
		TokenizerModel: DefaultTokenizerModel,
	}
	if config.Top != nil {
		settings.Top = *config.Top
	}
	if config.Format != "" {
		settings.Format = config.Format
	}
	if config.Color != "" {
		settings.Color = config.Color
	}
	if config.Clipboard != nil {
		settings.Clipboard = *config.Clipboard
	}
	if config.Tokens.Enabled != nil {
		settings.TokensEnabled = *config.Tokens.Enabled
	}
	if config.Tokens.Model != "" {
		settings.TokenizerModel = config.Tokens.Model
	}
	return settings
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
