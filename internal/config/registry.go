package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/muurk/storeadmin/internal/storeapi"
)

const (
	appName    = "storeadmin"
	configFile = "config.yaml"

	// APIURLEnvVar overrides the registry's API URL.
	APIURLEnvVar = "STOREADMIN_API_URL"
	// OriginEnvVar overrides the registry's dashboard origin.
	OriginEnvVar = "STOREADMIN_ORIGIN"
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate configuration directory for the application.
//   - Linux: $XDG_CONFIG_HOME/storeadmin or $HOME/.config/storeadmin
//   - macOS: $HOME/.config/storeadmin
//   - Windows: %LOCALAPPDATA%\storeadmin
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			return filepath.Join(xdgConfigHome, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load reads the registry at path. A missing file yields a default registry.
// An empty path means GetConfigPath().
func Load(path string) (*Registry, error) {
	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	fileMutex.Lock()
	defer fileMutex.Unlock()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var registry Registry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if registry.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported config version: %d (expected %d)", registry.Version, CurrentVersion)
	}

	if registry.Stores == nil {
		registry.Stores = make(map[string]*Store)
	}
	if registry.Preferences == nil {
		registry.Preferences = defaultPreferences()
	}
	if registry.Preferences.ConfirmPhrase == "" {
		registry.Preferences.ConfirmPhrase = DefaultConfirmPhrase
	}

	return &registry, nil
}

// Save writes the registry to path atomically (temp file + rename).
// An empty path means GetConfigPath().
func (r *Registry) Save(path string) error {
	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	fileMutex.Lock()
	defer fileMutex.Unlock()

	// User-only permissions; the file may name private stores.
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# storeadmin configuration file
# Caches the last known billboard per store. The admin API stays
# authoritative; this file only seeds the edit form.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// ResolveAPIURL picks the API URL: flag, then environment, then registry,
// then the client default.
func (r *Registry) ResolveAPIURL(flag string) string {
	return firstNonEmpty(flag, os.Getenv(APIURLEnvVar), r.APIURL, storeapi.DefaultBaseURL)
}

// ResolveOrigin picks the dashboard origin with the same precedence as
// ResolveAPIURL. Without an explicit origin the API URL is used, since the
// dashboard normally serves its own API.
func (r *Registry) ResolveOrigin(flag, apiURL string) string {
	return firstNonEmpty(flag, os.Getenv(OriginEnvVar), r.Origin, apiURL)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
