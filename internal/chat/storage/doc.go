// Package storage provides a pluggable storage layer for the
// chat application. It provides a pebble backend by default,
// but can be extended to support other storage backends as needed.
package storage
