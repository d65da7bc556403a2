// Package common provides shared helpers for MCP tool handlers: argument
// extraction and validation, and instrumentation wrappers that record metrics
// and audit logs for every tool invocation.
package common
