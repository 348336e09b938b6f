// Package server implements the agenda HTTP API surface and the service
// layer behind it.
//
// Owns:
//   - HTTP routing, handlers, and request/response contracts
//   - The agenda use cases (Service): list, list by day, get, create, delete all
//   - Mapping of service errors to HTTP statuses
//
// Does not own:
//   - Storage internals (store.Store implementations)
//   - Configuration loading
//
// Invariants:
//   - JSON responses go through writeJSON; the create confirmation is plain text
//   - Nothing is persisted for a rejected item
//   - Storage errors reach the client as 500 without retry
package server
