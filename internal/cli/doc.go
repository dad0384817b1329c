// Package cli renders bignum values and selfcheck progress for the
// developer binary: the demo table, value formatting in debug, decimal and
// hexadecimal form, a spinner-backed progress reporter and a Prometheus
// text dump of the selfcheck counters.
package cli
