// Package session provides the navigation collaborators the billboard form
// needs outside a browser: a Router that tracks the current route and a
// PageSync that keeps the local registry in step after each action.
package session
