// Package infrastructure contains concrete implementations of the
// interfaces defined in core/interfaces: cache backends (memory, Redis,
// SQLite), the outbound HTTP client and the logger.
package infrastructure
