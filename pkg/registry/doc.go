// Package registry provides a generic, thread-safe registry used to store the
// file manager capability table. It is populated once during process startup
// and is safe for concurrent read-only access afterwards.
package registry
