package urls

import (
	"net/url"
	"strings"
)

// Routes and API paths used by storeadmin.
// All path construction lives here so a route change is a one-line edit.

// Root is the dashboard root route. The form navigates here after a delete.
const Root = "/"

// Billboards is the route prefix for billboard pages within a store.
const Billboards = "billboards"

// StoreResource returns the admin API path for a store.
// Both the billboard update and delete requests are issued against it.
func StoreResource(storeID string) string {
	return "/api/stores/" + url.PathEscape(storeID)
}

// BillboardsPage returns the dashboard route listing a store's billboards.
func BillboardsPage(storeID string) string {
	return "/" + url.PathEscape(storeID) + "/" + Billboards
}

// PublicAPIURL builds the informational URL shown to operators:
// the dashboard origin followed by /api/<storeId>.
func PublicAPIURL(origin, storeID string) string {
	return strings.TrimRight(origin, "/") + "/api/" + storeID
}

// Join appends an API path to a base URL, tolerating a trailing slash on the base.
func Join(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + path
}
