// Package output provides output formatting for wld.
//
// This package handles CLI output formatting:
//
//   - formatter.go: Formatter interface and factory
//   - table.go: aligned table rendering
//   - json.go: JSON output formatting
//   - yaml.go: YAML output formatting
//
// The device list and status commands render as a table by default and as
// JSON or YAML for scripting.
package output
