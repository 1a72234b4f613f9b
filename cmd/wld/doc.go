// Package main provides the entry point for wld.
//
// The CLI tool manages and controls WLED devices:
//
//   - Device registry (add, delete, ls, set-default)
//   - Power control (on, off)
//   - Brightness control (brightness)
//   - Health checks (status)
//   - MCP tool server for AI agents (mcp)
//
// Usage:
//
//	wld [command] [flags]
//	wld add desk 192.168.1.50
//	wld on
//	wld status -o json
//
// Devices are stored in ~/.wld.toml and may be referenced by saved name
// or by literal address anywhere a device is expected.
package main
