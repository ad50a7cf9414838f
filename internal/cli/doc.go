// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags and the BASE_URL environment variable into the
// application's internal configuration.
package cli
