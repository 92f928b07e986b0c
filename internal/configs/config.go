package configs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ProjectConfigName is the project configuration file created by `jpas init`.
const ProjectConfigName = "jpas.json"

// ProjectConfig is the contents of jpas.json.
type ProjectConfig struct {
	// SaveOtherGPGRecipients is reserved. It is read and written but no
	// command encrypts to these recipients.
	SaveOtherGPGRecipients *[]string `json:"save_other_gpg_recipients"`
}

// UserConfig is the contents of the user settings file.
type UserConfig struct {
	GPG GPGConfig `toml:"gpg"`
}

// GPGConfig is the [gpg] table. An empty Program means gpg from PATH.
type GPGConfig struct {
	Program string `toml:"program"`
}

// ProjectConfigPath returns the path of jpas.json inside dir.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigName)
}

// LoadProjectConfig loads jpas.json from dir.
// Returns nil and no error if the file does not exist.
func LoadProjectConfig(dir string) (*ProjectConfig, error) {
	data, err := os.ReadFile(ProjectConfigPath(dir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read project config: %w", err)
	}

	config := &ProjectConfig{}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse project config: %w", err)
	}
	return config, nil
}

// MarshalProjectConfig renders a project config the way it is stored on disk.
func MarshalProjectConfig(config *ProjectConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(config); err != nil {
		return nil, fmt.Errorf("failed to encode project config: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// LoadUserConfig loads the user settings file.
// A missing file yields the default settings.
func LoadUserConfig() (*UserConfig, error) {
	config := &UserConfig{}

	configPath := UserJpasSettings.UserConfigPath
	if configPath == "" {
		return config, nil
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}
	return config, nil
}
