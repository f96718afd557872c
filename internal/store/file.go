package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/osse101/SpinSurvive_Go/internal/utils"
)

// FileStore persists every key in one JSON document on disk.
// Each write rewrites the whole document through a temp file and rename,
// so a crash never leaves a partially written save.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the JSON file at path.
// The file is created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) load() (map[string]string, error) {
	data := make(map[string]string)
	if err := utils.LoadJSON(f.path, &data); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf(ErrMsgReadFileFailed, err)
	}
	return data, nil
}

func (f *FileStore) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return "", err
	}
	v, ok := data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (f *FileStore) SetMany(_ context.Context, values map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return err
	}
	for k, v := range values {
		data[k] = v
	}
	if err := utils.SaveJSON(f.path, data); err != nil {
		return fmt.Errorf(ErrMsgWriteFileFailed, err)
	}
	return nil
}

func (f *FileStore) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return err
	}
	for _, k := range keys {
		delete(data, k)
	}
	if err := utils.SaveJSON(f.path, data); err != nil {
		return fmt.Errorf(ErrMsgWriteFileFailed, err)
	}
	return nil
}

// Ping checks the document is readable
func (f *FileStore) Ping(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, err := f.load()
	return err
}

func (f *FileStore) Close() error {
	return nil
}
