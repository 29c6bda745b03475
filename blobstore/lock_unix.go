//go:build unix

package blobstore

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// dirLock is an advisory flock on a store's root directory.
type dirLock struct {
	file *os.File
}

func acquireDirLock(path string) (*dirLock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o640)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("blob store directory already in use: %w", err)
	}

	return &dirLock{file: f}, nil
}

func (l *dirLock) release() error {
	if l.file == nil {
		return nil
	}
	_ = unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
	err := l.file.Close()
	l.file = nil
	return err
}
