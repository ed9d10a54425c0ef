package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound is returned when a storage id names no file on disk.
	ErrNotFound = errors.New("file not found")
	// ErrInvalidName is returned for names that could escape the root.
	ErrInvalidName = errors.New("invalid storage name")
)

// diskStore implements Store on a single local directory. It holds no state
// beyond the root path and is safe for concurrent use; identifier uniqueness
// (UUID prefixes minted by the namer) prevents write collisions between
// concurrent uploads.
type diskStore struct {
	root string
}

// NewDisk creates the root directory if needed and returns a disk-backed
// store rooted there.
func NewDisk(root string) (Store, error) {
	if root == "" {
		return nil, fmt.Errorf("storage root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &diskStore{root: root}, nil
}

// path confines name to the root. Storage ids are single path elements;
// anything else (separators, "..", empty) is rejected.
func (d *diskStore) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return "", ErrInvalidName
	}
	return filepath.Join(d.root, name), nil
}

func (d *diskStore) Create(name string) (io.WriteCloser, error) {
	p, err := d.path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Create(p)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", name, err)
	}
	return f, nil
}

func (d *diskStore) Open(name string) (io.ReadCloser, error) {
	p, err := d.path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return f, nil
}

func (d *diskStore) Remove(name string) error {
	p, err := d.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}

func (d *diskStore) List() ([]EntryInfo, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, fmt.Errorf("scan storage root: %w", err)
	}
	infos := make([]EntryInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			// Deleted between readdir and stat by a concurrent request.
			continue
		}
		if !fi.Mode().IsRegular() {
			continue
		}
		infos = append(infos, EntryInfo{Name: e.Name(), Size: fi.Size()})
	}
	return infos, nil
}

func (d *diskStore) Path(name string) (string, error) {
	p, err := d.path(name)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(p); err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("stat %s: %w", name, err)
	}
	return p, nil
}

func (d *diskStore) DiskSpace() (uint64, uint64, bool) {
	return diskSpace(d.root)
}

func (d *diskStore) Ping() error {
	fi, err := os.Stat(d.root)
	if err != nil {
		return fmt.Errorf("storage root unavailable: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("storage root %s is not a directory", d.root)
	}
	return nil
}
