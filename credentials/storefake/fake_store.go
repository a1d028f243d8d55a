package storefake

import (
	"sync"

	"github.com/jrsteele09/greenos-console/credentials"
)

var _ credentials.Store = (*FakeStore)(nil)

type FakeStore struct {
	values map[credentials.Key]string
	lock   sync.RWMutex
}

func NewFakeStore() *FakeStore {
	return &FakeStore{
		values: make(map[credentials.Key]string),
	}
}

// NewFakeStoreWith seeds the store, e.g. with a token pair.
func NewFakeStoreWith(values map[credentials.Key]string) *FakeStore {
	fs := NewFakeStore()
	for k, v := range values {
		fs.values[k] = v
	}
	return fs
}

func (fs *FakeStore) Get(key credentials.Key) (string, bool) {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	v, ok := fs.values[key]
	return v, ok
}

func (fs *FakeStore) Set(key credentials.Key, value string) error {
	if err := credentials.ValidateKey(key); err != nil {
		return err
	}
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.values[key] = value
	return nil
}

func (fs *FakeStore) Delete(key credentials.Key) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	delete(fs.values, key)
	return nil
}

// Snapshot returns a copy of the stored values.
func (fs *FakeStore) Snapshot() map[credentials.Key]string {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	out := make(map[credentials.Key]string, len(fs.values))
	for k, v := range fs.values {
		out[k] = v
	}
	return out
}
