package convert

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another run holds the destination lock.
var ErrLocked = errors.New("another cng2jpg run is using this destination")

// lockDir is where destination locks live, outside the destination tree.
var lockDir = os.TempDir

type destinationLock struct {
	path string
	lock *flock.Flock
}

func lockPathFor(dst string) string {
	abs, err := filepath.Abs(dst)
	if err != nil {
		abs = dst
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(lockDir(), "cng2jpg-"+hex.EncodeToString(sum[:8])+".lock")
}

func acquireLock(dst string) (*destinationLock, error) {
	path := lockPathFor(dst)
	l := flock.New(path)
	ok, err := l.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock %s)", ErrLocked, path)
	}
	return &destinationLock{path: path, lock: l}, nil
}

// release unlocks but leaves the file in place. Unlinking a flock file lets a
// waiting run lock the old inode while a new run locks a fresh one.
func (d *destinationLock) release() error {
	if err := d.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock %s: %w", d.path, err)
	}
	return nil
}
