// Package filelock serializes report writes across concurrent ftlint runs
// sharing an output directory.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockName is the lock file created inside a locked directory.
const LockName = ".ftlint.lock"

type Lock struct {
	flock *flock.Flock
	path  string
}

func New(path string) *Lock {
	return &Lock{flock: flock.New(path), path: path}
}

// ForDir returns the lock guarding dir, creating dir if needed.
func ForDir(dir string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	return New(filepath.Join(dir, LockName)), nil
}

func (l *Lock) Lock() error {
	if err := l.flock.Lock(); err != nil {
		return fmt.Errorf("acquiring lock on %s: %w", l.path, err)
	}
	return nil
}

// TryLock reports whether the lock was acquired without blocking.
func (l *Lock) TryLock() (bool, error) {
	ok, err := l.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("trying lock on %s: %w", l.path, err)
	}
	return ok, nil
}

func (l *Lock) Unlock() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("releasing lock on %s: %w", l.path, err)
	}
	return nil
}

// WriteFile replaces path with data through a temp file in the same
// directory, so readers see either the old or the new content.
func WriteFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}
	return nil
}
