// Package config loads and merges application configuration from environment
// variables, command-line flags, an optional JSON file, and built-in defaults.
//
// Sources are merged in priority order (environment > flags > JSON file >
// defaults) and the result is validated before use. All runtime parameters,
// including the token signing secret, database DSN, and listen address, flow
// through the returned [StructuredConfig]; nothing is read from process-wide
// globals at request time.
package config
