package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/hskdeck/internal/repository"
)

// errCorruptDocument marks a store file that exists but is not a JSON object of strings.
var errCorruptDocument = errors.New("corrupt store file")

// FileStore keeps every key in one JSON object on disk. Writes go to a temp file that is
// renamed over the original, so a crash never leaves a half-written document.
//
// A corrupt file fails reads until the next Set, which moves it aside to <path>.corrupt and
// starts a fresh document.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger logrus.FieldLogger
}

// NewFileStore returns a store backed by the JSON document at path. The file is created on
// the first Set.
func NewFileStore(path string, logger logrus.FieldLogger) *FileStore {
	return &FileStore{path: filepath.Clean(path), logger: logger}
}

var _ repository.KeyValueStore = (*FileStore)(nil)

func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readLocked()
	if err != nil {
		return "", false, err
	}
	value, ok := doc[key]
	return value, ok, nil
}

func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readLocked()
	if errors.Is(err, errCorruptDocument) {
		doc, err = s.quarantineLocked(err)
	}
	if err != nil {
		return err
	}
	doc[key] = value
	return s.writeLocked(doc)
}

// Path returns the backing file location.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) readLocked() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}
	doc := map[string]string{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w %s: %v", errCorruptDocument, s.path, err)
	}
	return doc, nil
}

func (s *FileStore) quarantineLocked(cause error) (map[string]string, error) {
	aside := s.path + ".corrupt"
	if err := os.Rename(s.path, aside); err != nil {
		return nil, fmt.Errorf("move corrupt store file: %w", err)
	}
	s.logger.WithError(cause).WithField("moved_to", aside).Warn("store file was corrupt, starting a fresh one")
	return map[string]string{}, nil
}

func (s *FileStore) writeLocked(doc map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp store file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
