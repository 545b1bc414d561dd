package config

import (
	"BlueprintDock/internal/constants"
	"BlueprintDock/internal/paths"
	"os"
	"os/user"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// AppConfig holds the tool configuration settings. Command-line flags
// override anything set here.
type AppConfig struct {
	Meta  MetaConfig `toml:"meta"`
	Paths PathConfig `toml:"paths"`

	// Runtime helper field, not saved to TOML
	BlueprintsDir string `toml:"-"`
}

// MetaConfig holds defaults for the index normalizer.
type MetaConfig struct {
	IndexFile      string `toml:"index_file"`
	CreateBackup   bool   `toml:"create_backup"`
	ValidateSchema bool   `toml:"validate_schema"`
}

// PathConfig holds directory path settings.
type PathConfig struct {
	BlueprintsFolder string `toml:"blueprints_folder"`
}

// ExpandVariables expands environment variables in the config values.
// It supports:
// - ${XDG_CONFIG_HOME} -> xdg.ConfigHome
// - ${XDG_DATA_HOME}   -> xdg.DataHome
// - ${XDG_STATE_HOME}  -> xdg.StateHome
// - ${XDG_CACHE_HOME}  -> xdg.CacheHome
// - ${HOME}            -> os.UserHomeDir()
// - ${USER}            -> Current username
func ExpandVariables(val string) string {
	mapper := func(varName string) string {
		switch varName {
		case "XDG_CONFIG_HOME":
			return xdg.ConfigHome
		case "XDG_DATA_HOME":
			return xdg.DataHome
		case "XDG_STATE_HOME":
			return xdg.StateHome
		case "XDG_CACHE_HOME":
			return xdg.CacheHome
		case "HOME":
			home, err := os.UserHomeDir()
			if err != nil {
				return ""
			}
			return home
		case "USER":
			u, err := user.Current()
			if err != nil {
				return os.Getenv("USERNAME") // Fallback for Windows
			}
			return u.Username
		}
		return ""
	}
	return os.Expand(val, mapper)
}

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	return AppConfig{
		Meta: MetaConfig{
			IndexFile:      constants.MetaFileName,
			CreateBackup:   false,
			ValidateSchema: true,
		},
		Paths: PathConfig{
			BlueprintsFolder: constants.BlueprintsDirName,
		},
	}
}

// LoadAppConfig reads the configuration file and returns the configuration.
// Missing or unreadable files yield the defaults; the defaults are saved on
// first run so the file exists for the operator to edit.
func LoadAppConfig() AppConfig {
	conf := Defaults()

	path := paths.GetConfigFilePath()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, &conf); err == nil {
			conf.BlueprintsDir = ExpandVariables(conf.Paths.BlueprintsFolder)
			return conf
		}
	}

	conf.BlueprintsDir = ExpandVariables(conf.Paths.BlueprintsFolder)
	_ = SaveAppConfig(conf)
	return conf
}

// SaveAppConfig writes the configuration to blueprintdock.toml.
func SaveAppConfig(conf AppConfig) error {
	path := paths.GetConfigFilePath()

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(conf)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
