// Package diagnostic provides structured errors, warnings and notes produced
// while checking identifier declarations.
//
// Key capabilities:
//   - Unknown or non fixed-width wire primitives
//   - Declared types missing from the engine package
//   - Underlying kind mismatches that would truncate or sign-extend
//   - Drift between a declaration file and the registered table
package diagnostic
