// Package driving defines the interfaces through which front ends call
// INTO the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI commands depend on these interfaces; core services implement
// them.
//
//   - CaptureService: The add-event flow (clipboard, fetch, extract, prompts)
//   - CollectionService: Browsing and mutating the persisted collection
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
