// Package core defines the shared types used across richlog.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log event before it is laid out for the terminal,
// and the Field type for structured key-value pairs.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once the handler has consumed it.
// Handlers render synchronously, so an Entry can always be recycled as
// soon as Handle returns.
package core
