// Package domain defines the core business entities for gigfolio.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Event: A ticketed or watched occasion (the sole persisted entity)
//   - Collection: The in-memory event collection with its invariants
//   - ExtractedPage: The partial record produced by page extraction
//   - CivilDateTime: A date and wall-clock time without a timezone
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
