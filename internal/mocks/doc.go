// Package mocks provides shared mock implementations for testing.
//
// Instead of defining inline stubs in individual test files, these
// implementations are reused across test packages. Each mock supports a
// function hook for per-test behavior, default return values for the
// common case, and call tracking for verification.
package mocks
