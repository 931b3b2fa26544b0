package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/hskdeck/internal/entity"
	"github.com/eslsoft/hskdeck/internal/repository"
)

// UserProgressKey is the storage key of the per-word mastery mapping.
const UserProgressKey = "user_progress"

// lastReviewedLayout matches ISO-8601 with millisecond precision in UTC.
const lastReviewedLayout = "2006-01-02T15:04:05.000Z"

type progressRecord struct {
	MasteryLevel int    `json:"masteryLevel"`
	LastReviewed string `json:"lastReviewed"`
}

// MasteryStore persists the mastery mapping as one JSON document in a key-value store.
type MasteryStore struct {
	kv     repository.KeyValueStore
	logger logrus.FieldLogger
	clock  func() time.Time
}

func NewMasteryStore(kv repository.KeyValueStore, logger logrus.FieldLogger) *MasteryStore {
	return &MasteryStore{kv: kv, logger: logger.WithField("store", UserProgressKey), clock: time.Now}
}

var _ repository.MasteryRepository = (*MasteryStore)(nil)

func (s *MasteryStore) GetAll(ctx context.Context) map[string]entity.MasteryRecord {
	doc, ok := s.load(ctx)
	if !ok {
		return map[string]entity.MasteryRecord{}
	}
	records := make(map[string]entity.MasteryRecord, len(doc))
	for id, raw := range doc {
		records[id] = s.toRecord(id, raw)
	}
	return records
}

func (s *MasteryStore) Get(ctx context.Context, wordID string) (entity.MasteryRecord, bool) {
	doc, ok := s.load(ctx)
	if !ok {
		return entity.MasteryRecord{}, false
	}
	raw, found := doc[wordID]
	if !found {
		return entity.MasteryRecord{}, false
	}
	return s.toRecord(wordID, raw), true
}

// SetMastery stamps the word with the clamped level and the current time. The returned
// record reflects the update even if persisting it failed.
func (s *MasteryStore) SetMastery(ctx context.Context, wordID string, level entity.MasteryLevel) entity.MasteryRecord {
	record := entity.MasteryRecord{
		WordID:       wordID,
		Level:        entity.ClampMastery(int(level)),
		LastReviewed: reviewStamp(s.clock()),
	}

	doc, ok := s.load(ctx)
	if !ok {
		doc = map[string]progressRecord{}
	}
	doc[wordID] = progressRecord{
		MasteryLevel: int(record.Level),
		LastReviewed: record.LastReviewed.Format(lastReviewedLayout),
	}
	s.save(ctx, doc)
	return record
}

// reviewStamp rounds up to the stored millisecond precision so the persisted time is never
// earlier than now.
func reviewStamp(now time.Time) time.Time {
	now = now.UTC()
	ms := now.Truncate(time.Millisecond)
	if ms.Before(now) {
		ms = ms.Add(time.Millisecond)
	}
	return ms
}

func (s *MasteryStore) ResetAll(ctx context.Context) {
	s.save(ctx, map[string]progressRecord{})
}

// load returns false when the stored document is unreadable; a missing key is an empty map.
func (s *MasteryStore) load(ctx context.Context) (map[string]progressRecord, bool) {
	value, found, err := s.kv.Get(ctx, UserProgressKey)
	if err != nil {
		s.logger.WithError(err).Error("failed to read user progress")
		return nil, false
	}
	doc := map[string]progressRecord{}
	if !found || value == "" {
		return doc, true
	}
	if err := json.Unmarshal([]byte(value), &doc); err != nil {
		s.logger.WithError(err).Error("failed to decode user progress")
		return nil, false
	}
	return doc, true
}

func (s *MasteryStore) save(ctx context.Context, doc map[string]progressRecord) {
	data, err := json.Marshal(doc)
	if err != nil {
		s.logger.WithError(err).Error("failed to encode user progress")
		return
	}
	if err := s.kv.Set(ctx, UserProgressKey, string(data)); err != nil {
		s.logger.WithError(err).Error("failed to save user progress")
	}
}

func (s *MasteryStore) toRecord(id string, raw progressRecord) entity.MasteryRecord {
	level := entity.MasteryLevel(raw.MasteryLevel)
	if !level.Valid() {
		s.logger.WithFields(logrus.Fields{"word_id": id, "mastery": raw.MasteryLevel}).Warn("clamping out-of-range mastery level")
		level = entity.ClampMastery(raw.MasteryLevel)
	}
	reviewed, err := time.Parse(time.RFC3339Nano, raw.LastReviewed)
	if err != nil && raw.LastReviewed != "" {
		s.logger.WithError(err).WithField("word_id", id).Warn("invalid lastReviewed timestamp")
	}
	return entity.MasteryRecord{WordID: id, Level: level, LastReviewed: reviewed}
}
