// Package commands defines the calcpad CLI and wires dependencies for subcommands.
//
// Commands
//
//   - eval     Evaluate an expression string
//   - press    Apply keys to the persisted calculator and print its display
//   - show     Print the persisted display
//   - reset    Forget the persisted expression
//   - tui      Interactive terminal calculator
//   - serve    Browser widget and JSON API
//   - remote   Press keys on a running widget server
//   - mcp      Serve calculator tools over MCP stdio
//
// # Implementation
//
// The root command loads the YAML config, builds a zap logger and the
// dependency graph (state store, editor options) before any subcommand runs,
// so handlers share one app context.
package commands
