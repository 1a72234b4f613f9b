// Package command provides CLI command definitions for wld.
//
// It uses urfave/cli/v2 for command parsing. Every command is a one-shot
// action: load the registry, act, and exit. Human-readable text goes to the
// app writer so output formats and tests stay in control of the stream.
package command
