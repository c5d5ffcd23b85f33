package config

import (
	"time"

	"github.com/muurk/storeadmin/internal/storeapi"
)

// CurrentVersion is the registry file format version.
const CurrentVersion = 1

// DefaultConfirmPhrase must be typed to confirm a delete on the command line.
const DefaultConfirmPhrase = "DELETE"

// Registry represents the entire user configuration file.
// It stores API settings and the last known billboard for each store.
type Registry struct {
	Version     int               `yaml:"version"`
	APIURL      string            `yaml:"api_url,omitempty"` // Admin API origin
	Origin      string            `yaml:"origin,omitempty"`  // Dashboard origin shown in the API alert
	Stores      map[string]*Store `yaml:"stores,omitempty"`  // Keyed by store ID
	Preferences *Preferences      `yaml:"preferences,omitempty"`
}

// Store is the locally cached page data for one store.
type Store struct {
	Name       string              `yaml:"name,omitempty"`
	Billboard  *storeapi.Billboard `yaml:"billboard,omitempty"`
	LastSynced time.Time           `yaml:"last_synced,omitempty"`
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	ConfirmPhrase  string `yaml:"confirm_phrase"`  // Phrase typed to confirm deletes
	TimeoutSeconds int    `yaml:"timeout_seconds"` // HTTP timeout for API requests
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     CurrentVersion,
		Stores:      make(map[string]*Store),
		Preferences: defaultPreferences(),
	}
}

func defaultPreferences() *Preferences {
	return &Preferences{
		ConfirmPhrase:  DefaultConfirmPhrase,
		TimeoutSeconds: 10,
	}
}

// GetStore retrieves store metadata by ID.
// Returns nil if the store isn't in the registry.
func (r *Registry) GetStore(storeID string) *Store {
	return r.Stores[storeID]
}

// EnsureStore returns the entry for storeID, creating it if needed.
func (r *Registry) EnsureStore(storeID string) *Store {
	if r.Stores == nil {
		r.Stores = make(map[string]*Store)
	}

	if store, exists := r.Stores[storeID]; exists {
		return store
	}

	store := &Store{}
	r.Stores[storeID] = store
	return store
}

// SetStoreName sets a user-friendly name for a store.
func (r *Registry) SetStoreName(storeID, name string) {
	r.EnsureStore(storeID).Name = name
}

// InitialData returns a copy of the cached billboard for storeID, or nil.
// The copy keeps callers from mutating registry state through it.
func (r *Registry) InitialData(storeID string) *storeapi.Billboard {
	store := r.GetStore(storeID)
	if store == nil || store.Billboard == nil {
		return nil
	}
	billboard := *store.Billboard
	return &billboard
}

// RecordBillboard stores label as the store's current billboard label.
func (r *Registry) RecordBillboard(storeID, label string) {
	store := r.EnsureStore(storeID)
	now := time.Now().UTC()

	if store.Billboard == nil {
		store.Billboard = &storeapi.Billboard{StoreID: storeID, CreatedAt: now}
	}
	store.Billboard.Label = label
	store.Billboard.UpdatedAt = now
	store.LastSynced = now
}

// ForgetBillboard drops the cached billboard after a delete.
func (r *Registry) ForgetBillboard(storeID string) {
	store := r.GetStore(storeID)
	if store == nil {
		return
	}
	store.Billboard = nil
	store.LastSynced = time.Now().UTC()
}
