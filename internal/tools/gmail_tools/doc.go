// Package gmail_tools provides the MCP tool for ingesting newsletter emails
// from Gmail and surfacing their article links.
package gmail_tools
