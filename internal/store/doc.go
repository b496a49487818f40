// Package store defines the interfaces for flashcard set storage. The only
// implementation in this codebase is the in-memory one in
// internal/platform/memory; the interface exists so handlers stay decoupled
// from the storage choice.
package store
