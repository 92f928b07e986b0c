package configs

import (
	"os"
	"path/filepath"
)

// ConfigPathEnv overrides the location of the user settings file.
const ConfigPathEnv = "JPAS_CONFIG"

type UserSettings struct {
	UserConfigPath string
}

var UserJpasSettings *UserSettings

func init() {
	UserJpasSettings = &UserSettings{
		UserConfigPath: defaultUserConfigPath(),
	}
}

func defaultUserConfigPath() string {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		// No home directory: behave as if no settings file exists.
		return ""
	}
	return filepath.Join(configDir, "jpas", "config.toml")
}
