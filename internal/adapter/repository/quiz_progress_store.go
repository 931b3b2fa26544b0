package repository

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/hskdeck/internal/entity"
	"github.com/eslsoft/hskdeck/internal/repository"
)

// QuizProgressKey is the storage key of the per-level quiz cursors.
const QuizProgressKey = "quiz_progress"

// PersistedKeys lists every document the stores own, in backup order.
var PersistedKeys = []string{UserProgressKey, QuizProgressKey}

// QuizProgressStore keeps one QuizProgress per level in a single JSON object whose keys are
// the decimal level numbers.
type QuizProgressStore struct {
	kv     repository.KeyValueStore
	logger logrus.FieldLogger
}

func NewQuizProgressStore(kv repository.KeyValueStore, logger logrus.FieldLogger) *QuizProgressStore {
	return &QuizProgressStore{kv: kv, logger: logger.WithField("store", QuizProgressKey)}
}

var _ repository.QuizProgressRepository = (*QuizProgressStore)(nil)

func (s *QuizProgressStore) Save(ctx context.Context, level int, progress entity.QuizProgress) {
	doc, ok := s.load(ctx)
	if !ok {
		doc = map[string]entity.QuizProgress{}
	}
	doc[strconv.Itoa(level)] = progress
	s.save(ctx, doc)
}

func (s *QuizProgressStore) Load(ctx context.Context) map[int]entity.QuizProgress {
	doc, ok := s.load(ctx)
	result := make(map[int]entity.QuizProgress, len(doc))
	if !ok {
		return result
	}
	for key, progress := range doc {
		level, err := strconv.Atoi(key)
		if err != nil {
			s.logger.WithField("key", key).Warn("ignoring quiz progress with non-numeric level")
			continue
		}
		result[level] = progress
	}
	return result
}

func (s *QuizProgressStore) Reset(ctx context.Context, level int) {
	doc, ok := s.load(ctx)
	if !ok {
		return
	}
	delete(doc, strconv.Itoa(level))
	s.save(ctx, doc)
}

func (s *QuizProgressStore) load(ctx context.Context) (map[string]entity.QuizProgress, bool) {
	value, found, err := s.kv.Get(ctx, QuizProgressKey)
	if err != nil {
		s.logger.WithError(err).Error("failed to read quiz progress")
		return nil, false
	}
	doc := map[string]entity.QuizProgress{}
	if !found || value == "" {
		return doc, true
	}
	if err := json.Unmarshal([]byte(value), &doc); err != nil {
		s.logger.WithError(err).Error("failed to decode quiz progress")
		return nil, false
	}
	return doc, true
}

func (s *QuizProgressStore) save(ctx context.Context, doc map[string]entity.QuizProgress) {
	data, err := json.Marshal(doc)
	if err != nil {
		s.logger.WithError(err).Error("failed to encode quiz progress")
		return
	}
	if err := s.kv.Set(ctx, QuizProgressKey, string(data)); err != nil {
		s.logger.WithError(err).Error("failed to save quiz progress")
	}
}
