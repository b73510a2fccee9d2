// Package cli turns the cali command line into a typed Command and runs it.
//
// Each process run is one cycle: Parse resolves configuration and the
// command, NewApp opens the configured store, and App.Execute loads every
// record, applies the command and saves again when the command mutates
// (log, bare amount, reset).
//
// Exit codes travel as *ExitError: 2 for usage and configuration errors.
// Any other error returned from Execute is an I/O failure and maps to 1.
package cli
