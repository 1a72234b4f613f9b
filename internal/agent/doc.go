// Package agent implements the MCP (Model Context Protocol) stdio tool
// server.
//
// The server speaks JSON-RPC 2.0 over newline-delimited JSON on
// stdin/stdout and exposes the saved device registry and power control as
// tools, so AI agents can drive WLED devices through the same resolution
// rules as the CLI. All logging goes to stderr; stdout carries only
// protocol frames.
package agent
