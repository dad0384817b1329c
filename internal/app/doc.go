// Package app wires configuration, logging, metrics and presentation into
// the bignum-dev application: it parses the command line, runs the demo or
// the selfcheck, and maps the outcome to a process exit code.
package app
