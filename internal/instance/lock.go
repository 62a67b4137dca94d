// pattern: Imperative Shell

package instance

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileName = "panegrid.lock"

// Lock acquires an exclusive file lock under dataDir so two workspaces
// never rotate the same log file. The caller must defer Unlock.
func Lock(dataDir string) (*flock.Flock, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	fl := flock.New(filepath.Join(dataDir, lockFileName))
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another panegrid instance is already running")
	}
	return fl, nil
}

// Unlock releases the lock. Safe on a nil handle.
func Unlock(fl *flock.Flock) {
	if fl != nil {
		_ = fl.Unlock()
	}
}
