// Package urls provides centralized route and API path construction.
//
// Usage:
//
//	import "github.com/muurk/storeadmin/internal/urls"
//
//	endpoint := urls.Join(apiURL, urls.StoreResource(storeID))
package urls
