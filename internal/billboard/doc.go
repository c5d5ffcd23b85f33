// Package billboard implements the create/edit form for a store's billboard.
//
// The form has one field, a required label. A Controller binds that field,
// tracks a loading flag and a confirmation-gate flag, and performs two
// actions against the admin API:
//
//   - Submit: validate, PATCH the label, refresh, notify.
//   - ConfirmDelete: DELETE, refresh, navigate to the root route, notify.
//
// Deletion is a two-step flow. RequestDelete only opens the gate;
// ConfirmDelete (the gate's confirm handler) does the work and CloseDelete
// is its cancel handler.
//
// Failures are never returned to the caller. Each is logged once and turned
// into exactly one notification; the loading flag is cleared in a deferred
// step so it is false again after every outcome.
//
// The controller has no UI of its own. The terminal form in package tui and
// the non-interactive commands in cmd/storeadmin supply the Router and
// Notifier and render the state exposed by Values, Loading and Gate.
package billboard
