// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CollectionStore: Durable persistence for the event collection
//   - PageFetcher: Retrieves ticket-page HTML
//   - Prompter: The interactive prompt surface (input, choice, confirmation)
//   - ConfigStore: Application configuration and preferences
//
// # Optional Interfaces
//
// These can be nil - the affected feature degrades gracefully:
//
//   - Clipboard: Prefills the capture flow from pasted text
//   - CalendarWriter: Exports events as calendar files
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
