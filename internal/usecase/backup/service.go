package backup

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/hskdeck/internal/entity"
	"github.com/eslsoft/hskdeck/internal/repository"
)

const (
	formatVersion = 1
	metaType      = "meta"
	valueType     = "kv"
)

var errNoKeysSelected = errors.New("backup: no keys selected")

type ProgressReporter interface {
	StartKey(key string)
	FinishKey(key string, size int)
}

type noopProgress struct{}

func (noopProgress) StartKey(string)       {}
func (noopProgress) FinishKey(string, int) {}

// Service dumps and restores persisted progress documents as NDJSON.
type Service struct {
	kv     repository.KeyValueStore
	keys   []string
	logger logrus.FieldLogger
	clock  func() time.Time
}

type Option func(*Service)

func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewService constructs a backup service over kv for the given document keys.
func NewService(kv repository.KeyValueStore, logger logrus.FieldLogger, keys []string, opts ...Option) (*Service, error) {
	if kv == nil {
		return nil, errors.New("backup: key-value store is required")
	}
	keys = normalizeKeys(keys)
	if len(keys) == 0 {
		return nil, errNoKeysSelected
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	svc := &Service{kv: kv, keys: keys, logger: logger.WithField("component", "backup"), clock: time.Now}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

type ExportOption func(*exportConfig)

type exportConfig struct {
	keys     []string
	reporter ProgressReporter
}

// WithKeys restricts export to the provided keys.
func WithKeys(keys []string) ExportOption {
	return func(cfg *exportConfig) {
		cfg.keys = normalizeKeys(keys)
	}
}

// WithProgressReporter registers a reporter that receives progress callbacks during export.
func WithProgressReporter(reporter ProgressReporter) ExportOption {
	return func(cfg *exportConfig) {
		cfg.reporter = reporter
	}
}

type ImportOption func(*importConfig)

type importConfig struct {
	keys []string
}

// WithImportKeys restricts import to the provided keys.
func WithImportKeys(keys []string) ImportOption {
	return func(cfg *importConfig) {
		cfg.keys = normalizeKeys(keys)
	}
}

type record struct {
	Type       string          `json:"type"`
	Version    int             `json:"version,omitempty"`
	ExportedAt *time.Time      `json:"exported_at,omitempty"`
	Keys       []string        `json:"keys,omitempty"`
	Key        string          `json:"key,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// Export writes a meta record followed by one record per stored key. Keys that were never
// written are left out.
func (s *Service) Export(ctx context.Context, w io.Writer, opts ...ExportOption) error {
	cfg := exportConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	keys, err := s.selectKeys(cfg.keys)
	if err != nil {
		return err
	}
	reporter := cfg.reporter
	if reporter == nil {
		reporter = noopProgress{}
	}

	type entry struct {
		key   string
		value json.RawMessage
	}
	entries := make([]entry, 0, len(keys))
	for _, key := range keys {
		value, found, err := s.kv.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("read %s: %w", key, err)
		}
		if !found {
			continue
		}
		if !json.Valid([]byte(value)) {
			s.logger.WithField("key", key).Warn("skipping value that is not valid JSON")
			continue
		}
		entries = append(entries, entry{key: key, value: json.RawMessage(value)})
	}

	writer := bufio.NewWriter(w)
	defer writer.Flush()

	now := s.clock().UTC()
	exported := make([]string, 0, len(entries))
	for _, e := range entries {
		exported = append(exported, e.key)
	}
	if err := writeRecord(writer, record{Type: metaType, Version: formatVersion, ExportedAt: &now, Keys: exported}); err != nil {
		return err
	}
	for _, e := range entries {
		reporter.StartKey(e.key)
		if err := writeRecord(writer, record{Type: valueType, Key: e.key, Payload: e.value}); err != nil {
			return err
		}
		reporter.FinishKey(e.key, len(e.value))
	}
	return writer.Flush()
}

// Import reads a backup produced by Export. Nothing is written unless the whole input parses.
func (s *Service) Import(ctx context.Context, r io.Reader, opts ...ImportOption) error {
	cfg := importConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	keys, err := s.selectKeys(cfg.keys)
	if err != nil {
		return err
	}

	values, err := s.decode(r, keys)
	if err != nil {
		return err
	}

	for _, key := range keys {
		value, ok := values[key]
		if !ok {
			continue
		}
		if err := s.kv.Set(ctx, key, value); err != nil {
			return fmt.Errorf("write %s: %w", key, err)
		}
		s.logger.WithField("key", key).Info("restored progress document")
	}
	return nil
}

func (s *Service) decode(r io.Reader, keys []string) (map[string]string, error) {
	br := bufio.NewReader(r)
	var (
		metaSeen bool
		meta     record
		values   = make(map[string]string, len(keys))
		lineNo   int
	)
	for {
		line, err := br.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read backup: %w", err)
		}
		lineNo++
		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			var rec record
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", entity.ErrInvalidBackupFile, lineNo, err)
			}
			switch rec.Type {
			case metaType:
				metaSeen = true
				meta = rec
			case valueType:
				if !metaSeen {
					return nil, fmt.Errorf("%w: record before meta on line %d", entity.ErrInvalidBackupFile, lineNo)
				}
				if !slices.Contains(keys, rec.Key) {
					s.logger.WithField("key", rec.Key).Debug("skipping key not selected for import")
					break
				}
				if len(rec.Payload) == 0 {
					return nil, fmt.Errorf("%w: missing payload for %s", entity.ErrInvalidBackupFile, rec.Key)
				}
				var compact bytes.Buffer
				if err := json.Compact(&compact, rec.Payload); err != nil {
					return nil, fmt.Errorf("%w: payload for %s: %v", entity.ErrInvalidBackupFile, rec.Key, err)
				}
				values[rec.Key] = compact.String()
			default:
				return nil, fmt.Errorf("%w: unknown record type %q", entity.ErrInvalidBackupFile, rec.Type)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
	}

	if !metaSeen {
		return nil, fmt.Errorf("%w: missing meta record", entity.ErrInvalidBackupFile)
	}
	if meta.Version != formatVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", entity.ErrInvalidBackupFile, meta.Version)
	}
	return values, nil
}

func (s *Service) selectKeys(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return s.keys, nil
	}
	selected := make([]string, 0, len(requested))
	for _, key := range requested {
		if !slices.Contains(s.keys, key) {
			return nil, fmt.Errorf("backup: unknown key %q", key)
		}
		selected = append(selected, key)
	}
	return selected, nil
}

func writeRecord(w io.Writer, rec record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

func normalizeKeys(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		key := strings.TrimSpace(value)
		if key == "" || slices.Contains(result, key) {
			continue
		}
		result = append(result, key)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
