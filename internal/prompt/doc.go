// Package prompt assembles the curator system prompt from the base
// instructions and the stored writing profile.
package prompt
