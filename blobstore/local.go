package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sigabrtio/gosoup/internal/fs"
)

// LocalOptions configures a Local store.
type LocalOptions struct {
	// FS is the file system implementation. Defaults to fs.Default.
	FS fs.FileSystem

	// DisableLock skips the advisory root-directory lock. The lock guards
	// against two processes swapping pages into the same directory; it is
	// only taken when FS is the real file system.
	DisableLock bool
}

// Local implements Store using the local file system.
//
// Writes are atomic: data is written to a temp file, synced, then renamed
// into place, and the directory is synced afterwards.
type Local struct {
	root string
	fsys fs.FileSystem
	lock *dirLock
}

// NewLocal creates a Local store rooted at the given directory, creating it
// if necessary.
func NewLocal(root string, optFns ...func(o *LocalOptions)) (*Local, error) {
	opts := LocalOptions{FS: fs.Default}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.FS == nil {
		opts.FS = fs.Default
	}

	if err := opts.FS.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create blob root: %w", err)
	}

	s := &Local{root: root, fsys: opts.FS}

	_, isReal := opts.FS.(fs.LocalFS)
	if isReal && !opts.DisableLock {
		lock, err := acquireDirLock(filepath.Join(root, ".lock"))
		if err != nil {
			return nil, err
		}
		s.lock = lock
	}

	return s, nil
}

// Close releases the advisory directory lock, if held.
func (s *Local) Close() error {
	if s.lock != nil {
		return s.lock.release()
	}
	return nil
}

func (s *Local) path(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}

// Put writes a blob atomically via a temp file and rename.
func (s *Local) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	final := s.path(name)
	dir := filepath.Dir(final)
	if err := s.fsys.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	tmp := final + ".tmp"
	f, err := s.fsys.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = s.fsys.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = s.fsys.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = s.fsys.Remove(tmp)
		return err
	}

	if err := s.fsys.Rename(tmp, final); err != nil {
		_ = s.fsys.Remove(tmp)
		return err
	}

	// Rename durability needs the parent directory synced as well.
	if err := fs.SyncDir(s.fsys, dir); err != nil && !errors.Is(err, os.ErrInvalid) {
		return err
	}
	return nil
}

// Get returns the blob's contents, or ErrNotFound.
func (s *Local) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := s.fsys.OpenFile(s.path(name), os.O_RDONLY, 0)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return io.ReadAll(f)
}

// Delete removes a blob. Missing blobs are ignored.
func (s *Local) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.fsys.Remove(s.path(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// List returns all blob names under the root matching the prefix, sorted.
func (s *Local) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var names []string
	var walk func(rel string) error
	walk = func(rel string) error {
		entries, err := s.fsys.ReadDir(filepath.Join(s.root, filepath.FromSlash(rel)))
		if err != nil {
			return err
		}
		for _, e := range entries {
			child := e.Name()
			if rel != "" {
				child = rel + "/" + child
			}
			if e.IsDir() {
				if err := walk(child); err != nil {
					return err
				}
				continue
			}
			if child == ".lock" || strings.HasSuffix(child, ".tmp") {
				continue
			}
			if strings.HasPrefix(child, prefix) {
				names = append(names, child)
			}
		}
		return nil
	}
	if err := walk(""); err != nil {
		return nil, err
	}

	sort.Strings(names)
	return names, nil
}
