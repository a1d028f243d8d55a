package credentials

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var _ Store = (*FileStore)(nil)

// FileStore persists values as a JSON object in one file per backend origin.
type FileStore struct {
	path   string
	values map[Key]string
	lock   sync.RWMutex
}

// NewFileStore opens (or lazily creates) the store for baseURL inside dir.
func NewFileStore(dir, baseURL string) (*FileStore, error) {
	origin, err := originFileName(baseURL)
	if err != nil {
		return nil, err
	}
	fs := &FileStore{
		path:   filepath.Join(dir, origin+".json"),
		values: make(map[Key]string),
	}
	if err := fs.load(); err != nil {
		return nil, err
	}
	return fs, nil
}

// Path returns the file backing the store.
func (fs *FileStore) Path() string {
	return fs.path
}

func (fs *FileStore) Get(key Key) (string, bool) {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	v, ok := fs.values[key]
	return v, ok
}

func (fs *FileStore) Set(key Key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	fs.lock.Lock()
	defer fs.lock.Unlock()

	previous, existed := fs.values[key]
	fs.values[key] = value
	if err := fs.flush(); err != nil {
		if existed {
			fs.values[key] = previous
		} else {
			delete(fs.values, key)
		}
		return err
	}
	return nil
}

func (fs *FileStore) Delete(key Key) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	previous, existed := fs.values[key]
	if !existed {
		return nil
	}
	delete(fs.values, key)
	if err := fs.flush(); err != nil {
		fs.values[key] = previous
		return err
	}
	return nil
}

func (fs *FileStore) load() error {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read credentials file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	raw := make(map[string]string)
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode credentials file %s: %w", fs.path, err)
	}
	for k, v := range raw {
		fs.values[Key(k)] = v
	}
	return nil
}

// flush writes the whole map through a temp file and rename. Caller holds the lock.
func (fs *FileStore) flush() error {
	if err := os.MkdirAll(filepath.Dir(fs.path), 0700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	data, err := json.MarshalIndent(fs.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(fs.path), ".credentials-*")
	if err != nil {
		return fmt.Errorf("create temp credentials file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod credentials file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write credentials file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close credentials file: %w", err)
	}
	if err := os.Rename(tmp.Name(), fs.path); err != nil {
		return fmt.Errorf("replace credentials file: %w", err)
	}
	return nil
}

// originFileName turns "https://api.example.com:8443/x" into "https_api.example.com_8443".
func originFileName(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse backend url: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("backend url %q has no host", baseURL)
	}
	name := u.Scheme + "_" + u.Host
	return strings.NewReplacer(":", "_", "/", "_", "\\", "_").Replace(name), nil
}
