package logs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// Semaphore is a binary named semaphore held around each write.
type Semaphore interface {
	Acquire() error
	Release() error
	Close() error
}

// MutexBackend creates, opens and removes named semaphores.
type MutexBackend interface {
	// Create makes a new semaphore; it fails if name already exists.
	Create(name string) (Semaphore, error)
	// Open attaches to an existing semaphore.
	Open(name string) (Semaphore, error)
	// Unlink removes the name. Open handles stay usable until closed.
	Unlink(name string) error
}

// FileLockBackend implements MutexBackend with advisory locks on files named
// after the semaphore (flock on unix, LockFileEx on windows). Locks on
// separate handles exclude each other, both within a process and across
// processes.
type FileLockBackend struct {
	// Dir holds the lock files. Empty means DefaultSemaphoreDir().
	Dir string
}

// DefaultSemaphoreDir returns /dev/shm on linux when present, otherwise the
// OS temp directory.
func DefaultSemaphoreDir() string {
	if runtime.GOOS == "linux" {
		if fi, err := os.Stat("/dev/shm"); err == nil && fi.IsDir() {
			return "/dev/shm"
		}
	}
	return os.TempDir()
}

func (b FileLockBackend) path(name string) (string, error) {
	base := strings.TrimPrefix(name, "/")
	if base == emptyString || len(base) > 251 || strings.ContainsAny(base, `/\`) || base == "." || base == ".." {
		return emptyString, fmt.Errorf("invalid named mutex name %q", name)
	}
	dir := b.Dir
	if dir == emptyString {
		dir = DefaultSemaphoreDir()
	}
	return filepath.Join(dir, "sem."+base), nil
}

// Create makes the lock file exclusively, so an existing name fails.
func (b FileLockBackend) Create(name string) (Semaphore, error) {
	p, err := b.path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(p, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return nil, err
	}
	return &fileSemaphore{f: f}, nil
}

// Open opens an existing lock file.
func (b FileLockBackend) Open(name string) (Semaphore, error) {
	p, err := b.path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(p, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return &fileSemaphore{f: f}, nil
}

// Unlink removes the lock file.
func (b FileLockBackend) Unlink(name string) error {
	p, err := b.path(name)
	if err != nil {
		return err
	}
	return os.Remove(p)
}

// fileSemaphore pairs an in-process mutex with an OS file lock. The OS lock
// is per handle, so goroutines sharing the handle are ordered by mu.
type fileSemaphore struct {
	mu sync.Mutex
	f  *os.File
}

func (s *fileSemaphore) Acquire() error {
	s.mu.Lock()
	if err := lockFile(s.f); err != nil {
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *fileSemaphore) Release() error {
	err := unlockFile(s.f)
	s.mu.Unlock()
	return err
}

func (s *fileSemaphore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Close()
}
