//go:build !unix

package blobstore

// Advisory directory locking is only implemented on unix-like systems;
// elsewhere the lock is a no-op.
type dirLock struct{}

func acquireDirLock(string) (*dirLock, error) { return &dirLock{}, nil }

func (l *dirLock) release() error { return nil }
