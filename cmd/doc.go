// Package cmd implements the command-line interface for curator.
//
// This package provides the following commands:
//   - serve: Start the MCP server exposing the curation tools
//   - ingest: Fetch newsletter emails for a tracked source once and print them
//   - version: Display version information
//
// The serve command is the default command when no subcommand is specified.
package cmd
