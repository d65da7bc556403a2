// Package instrumentation provides OpenTelemetry instrumentation for the
// curator MCP server.
//
// This package enables production-grade observability through:
//   - OpenTelemetry metrics for HTTP requests, Gmail API calls, store operations, and tool calls
//   - Prometheus metrics export via /metrics endpoint on dedicated port
//   - OTLP export support for modern observability platforms
//   - Structured audit logging of every tool invocation
//
// # Metrics
//
// The package exposes the following metric categories:
//
// Server/HTTP Metrics:
//   - http_requests_total: Counter of HTTP requests by method, path, and status
//   - http_request_duration_seconds: Histogram of HTTP request durations
//
// Gmail API Metrics:
//   - gmail_api_operations_total: Counter of Gmail API operations by operation and status
//   - gmail_api_operation_duration_seconds: Histogram of Gmail API operation durations
//
// Store Metrics:
//   - store_operations_total: Counter of key-value store operations by backend, operation, status
//   - store_operation_duration_seconds: Histogram of store operation durations
//
// MCP Tool Metrics:
//   - mcp_tool_invocations_total: Counter of MCP tool invocations by tool name and status
//   - mcp_tool_duration_seconds: Histogram of MCP tool execution durations
//
// # Configuration
//
// Configuration is environment driven; see DefaultConfig for the recognized
// variables. Set INSTRUMENTATION_ENABLED=false to disable all instrumentation,
// in which case a no-op metrics recorder is returned and recording calls are
// safe but do nothing.
//
// # Cardinality
//
// Metric labels are kept low-cardinality by default. Newsletter sender
// domains are only attached to tool metrics when METRICS_DETAILED_LABELS=true.
package instrumentation
