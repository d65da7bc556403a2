// Package inspiration_tools provides MCP tools for harvesting and querying
// inspirations, the candidate ideas collected from tracked sources.
package inspiration_tools
