// Package cli parses the idwire command line, configures logging and runs the
// selected command against the built-in identifier table. It owns exit codes:
// 0 on success, 1 when a command fails, 2 on usage errors.
package cli
