// Package logging provides the logging interface used by the bignum tools.
// It hides the backend so the selfcheck runner and the CLI log the same way
// whether they write zerolog JSON, zerolog console output or plain log lines.
package logging
