// Package config provides the configuration lookup boundary.
//
// Consumers ask for lowercase snake_case keys (e.g. "gmail_client_id"); the
// environment-backed implementation maps them to uppercase environment
// variables (GMAIL_CLIENT_ID), optionally loaded from a .env file first.
package config
