// Package errors provides type-safe error primitives used across listingproc.
//
// Unit-level failures (input, structure, semantic, hash) are resolved into a
// single diagnostic line per source unit; everything else is an invocation
// failure mapped to an exit code by CLIErrorAdapter.
//
// Example usage:
//
//	err := errors.HashError("hash script failed").
//		WithContext("dialect", "hash-cpp").
//		Build()
package errors
