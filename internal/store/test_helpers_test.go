package store_test

import (
	"errors"

	"github.com/fittrack/fittrack-cli/internal/storage"
)

// failingAdapter wraps a working adapter and fails every Set once armed,
// simulating a storage-quota style write failure.
type failingAdapter struct {
	inner storage.Adapter
	fail  bool
}

var errSetRefused = errors.New("set refused")

func (f *failingAdapter) Get(key string) ([]byte, bool, error) {
	return f.inner.Get(key)
}

func (f *failingAdapter) Set(key string, value []byte) error {
	if f.fail {
		return errSetRefused
	}
	return f.inner.Set(key, value)
}

func (f *failingAdapter) Delete(key string) error {
	return f.inner.Delete(key)
}
