// Package app wires application dependencies for the CLI.
//
// It builds the state store and editors from a loaded config.Config and
// logger, exposing them via the Wire struct for commands to use.
package app
