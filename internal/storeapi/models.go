package storeapi

import "time"

// Billboard is a promotional record belonging to a store.
// It is what the dashboard page passes to the form as initial data.
type Billboard struct {
	ID        string    `json:"id" yaml:"id"`
	StoreID   string    `json:"storeId" yaml:"store_id,omitempty"`
	Label     string    `json:"label" yaml:"label"`
	ImageURL  string    `json:"imageUrl" yaml:"image_url,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updated_at,omitempty"`
}

// LabelUpdate is the PATCH body sent to the store resource.
type LabelUpdate struct {
	Label string `json:"label"`
}
