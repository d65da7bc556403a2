// Package content_tools provides MCP tools for the content lifecycle:
// creating drafts, iterating on them, and marking them done.
package content_tools
