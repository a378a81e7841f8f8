// Package store provides file-based persistence for calcpad's editor state.
//
// StateFileStore implements domain.StateStore, serialising the editor
// snapshot as JSON under the configured home directory. Writes go through a
// temp file and a rename so a crash never leaves a half-written state file.
// All methods are concurrency-safe via internal locking.
package store
