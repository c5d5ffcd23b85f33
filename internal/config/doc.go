// Package config provides user configuration management for storeadmin.
//
// A YAML file records the admin API location and, per store, the last known
// billboard. The cached billboard seeds the edit form's initial data; the
// admin API remains the source of truth.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/storeadmin/config.yaml or $HOME/.config/storeadmin/config.yaml
//   - macOS: $HOME/.config/storeadmin/config.yaml
//   - Windows: %LOCALAPPDATA%\storeadmin\config.yaml
//
// # Precedence
//
// Settings resolve as command-line flag, then environment
// (STOREADMIN_API_URL, STOREADMIN_ORIGIN), then file, then default.
//
// # Usage Example
//
//	registry, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//
//	registry.RecordBillboard("store-1", "Summer sale")
//
//	if err := registry.Save(""); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// File operations are serialized by a package mutex and writes are atomic.
// A *Registry itself is not safe for concurrent mutation.
package config
