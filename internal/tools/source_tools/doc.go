// Package source_tools provides MCP tools for managing tracked content
// sources: blogs, single articles, and newsletter senders.
package source_tools
