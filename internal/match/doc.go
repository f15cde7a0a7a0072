// Package match finds the closest known identifier to a misspelled one, for
// "did you mean" hints in declaration diagnostics.
package match
