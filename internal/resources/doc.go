// Package resources exposes the stored writing profile as read-only MCP
// resources.
package resources
