// Package file provides the TOML configuration store.
//
// Recognised keys:
//   - collection.backend: "file" (default) or "sqlite"
//   - collection.path: data directory, defaults to ~/.gigfolio
//   - locale.timezone: IANA zone for entered dates, defaults to Europe/Berlin
//   - calendar.output_dir: where exported .ics files are written
//   - calendar.event_hours: assumed event duration for exports, defaults to 2
package file
