// Package server provides the MCP server context, health checks, and the
// dedicated metrics endpoint for the curator application.
//
// # Key Components
//
// ServerContext holds the shared state every tool handler needs: the
// key-value store and the collection operations over it, the configuration
// source, and a lazily created Gmail client. The Gmail client is only built
// when an ingestion tool first needs it, so the server starts fine without
// mail credentials.
//
// HealthChecker serves Kubernetes-style liveness and readiness probes. The
// readiness probe additionally pings the backing store when the configured
// backend supports reachability checks (Redis).
//
// MetricsServer exposes Prometheus metrics on a dedicated port, isolating
// operational metrics from MCP traffic.
package server
