// Package gmail wraps the Gmail API for newsletter ingestion. A Client fetches
// recent messages from a single sender; the body and link extraction helpers
// are pure functions over message parts so they can be tested without the API.
package gmail
