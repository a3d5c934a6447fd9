// Package blob provides key-value stores of opaque byte snapshots.
//
// A Put always replaces the whole value for a key; readers never observe a
// partially written value.
package blob

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("blob not found")

// Store is a key-value store of opaque blobs.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, data []byte) error
	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendBolt   Backend = "bolt"
)

// Backends lists every supported backend.
var Backends = []Backend{BackendMemory, BackendFile, BackendSQLite, BackendBolt}

// IsValid reports whether b names a supported backend.
func (b Backend) IsValid() bool {
	for _, known := range Backends {
		if b == known {
			return true
		}
	}
	return false
}

// Open creates the Store for backend. path is a directory for the file
// backend and a database file for sqlite and bolt; memory ignores it.
func Open(backend Backend, path string) (Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendFile:
		return OpenFile(path)
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendBolt:
		return OpenBolt(path)
	default:
		return nil, fmt.Errorf("unsupported blob backend %q", backend)
	}
}

func validKey(key string) error {
	if key == "" {
		return errors.New("empty blob key")
	}
	return nil
}
