// Package storeapi provides an HTTP client for the storefront admin API.
//
// The client is deliberately thin: one request per call, no retries, no
// caching. Every failure comes back as an *APIError classified by the same
// rules as the rest of storeadmin's tooling (timeout, connection refused,
// DNS, non-2xx HTTP status).
//
// # Usage Example
//
//	client := storeapi.NewClient("http://localhost:3000")
//
//	err := client.UpdateStore(ctx, storeID, &storeapi.LabelUpdate{Label: "Summer sale"})
//	if err != nil {
//	    fmt.Println(storeapi.ShortMessage(err))
//	}
//
// # Endpoints
//
//	PATCH  /api/stores/{storeId}   body: {"label": "..."}
//	DELETE /api/stores/{storeId}
//
// Any 2xx status is success. Each request carries an X-Request-ID header
// whose value also appears in debug logs.
package storeapi
