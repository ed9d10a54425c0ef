// Package storage contains the local-disk file store. The upload directory
// is the sole source of truth: nothing is cached between calls, every
// listing and usage figure is recomputed from the filesystem.
package storage

import "io"

// EntryInfo describes one regular file in the store. Name is the storage
// identifier, i.e. the on-disk filename.
type EntryInfo struct {
	Name string
	Size int64
}

// Store is the file store used by the service layer. Implementations must
// confine every operation to the store root; names carrying path separators
// or dot segments are rejected with ErrInvalidName.
type Store interface {
	// Create opens a new file for writing under the given storage id.
	Create(name string) (io.WriteCloser, error)
	// Open returns the file content for reading. Missing files yield
	// ErrNotFound.
	Open(name string) (io.ReadCloser, error)
	// Remove unlinks a stored file. Missing files yield ErrNotFound.
	Remove(name string) error
	// List scans the root and returns every regular file with its current
	// size. Directories are ignored.
	List() ([]EntryInfo, error)
	// Path resolves a storage id to an absolute path inside the root,
	// for handing to the transport's file server.
	Path(name string) (string, error)
	// DiskSpace probes free/total bytes of the volume hosting the root.
	// ok is false when the probe failed and the values are fallbacks.
	DiskSpace() (free, total uint64, ok bool)
	// Ping verifies the store root is reachable.
	Ping() error
}
