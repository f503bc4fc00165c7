// Package history keeps the log of successful calculations.
//
// Entries are appended only for numeric outcomes and listed oldest first.
// The log can be exported as JSON, YAML or TOML.
package history
