package instance

import "testing"

func TestLockIsExclusive(t *testing.T) {
	dir := t.TempDir()

	fl, err := Lock(dir)
	if err != nil {
		t.Fatalf("Lock() error = %v", err)
	}
	defer Unlock(fl)

	if _, err := Lock(dir); err == nil {
		t.Error("second Lock() succeeded, want exclusion")
	}
}

func TestLockReleasable(t *testing.T) {
	dir := t.TempDir()

	fl, err := Lock(dir)
	if err != nil {
		t.Fatalf("Lock() error = %v", err)
	}
	Unlock(fl)

	fl2, err := Lock(dir)
	if err != nil {
		t.Errorf("Lock() after Unlock() error = %v", err)
	}
	Unlock(fl2)
}

func TestLockCreatesDataDir(t *testing.T) {
	dir := t.TempDir() + "/nested/data"

	fl, err := Lock(dir)
	if err != nil {
		t.Fatalf("Lock() error = %v", err)
	}
	Unlock(fl)
}

func TestUnlockNilHandle(t *testing.T) {
	Unlock(nil)
}
