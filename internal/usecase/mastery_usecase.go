package usecase

import (
	"context"

	"github.com/eslsoft/hskdeck/internal/entity"
	"github.com/eslsoft/hskdeck/internal/repository"
)

// MasteryChange reports how an answer moved a word's mastery.
type MasteryChange struct {
	WordID   string
	Previous entity.MasteryLevel
	Next     entity.MasteryLevel
	Record   entity.MasteryRecord
}

// MasteryUsecase applies answer outcomes to the persisted mastery mapping.
type MasteryUsecase interface {
	GetAll(ctx context.Context) map[string]entity.MasteryRecord
	Get(ctx context.Context, wordID string) (entity.MasteryRecord, bool)
	SetMastery(ctx context.Context, wordID string, level entity.MasteryLevel) entity.MasteryRecord
	UpdateByOutcome(ctx context.Context, wordID string, correct bool, policy entity.Policy) (MasteryChange, error)
	ResetAll(ctx context.Context)
}

func NewMasteryUsecase(repo repository.MasteryRepository) MasteryUsecase {
	return &masteryUsecase{repo: repo}
}

type masteryUsecase struct {
	repo repository.MasteryRepository
}

func (u *masteryUsecase) GetAll(ctx context.Context) map[string]entity.MasteryRecord {
	return u.repo.GetAll(ctx)
}

func (u *masteryUsecase) Get(ctx context.Context, wordID string) (entity.MasteryRecord, bool) {
	return u.repo.Get(ctx, wordID)
}

func (u *masteryUsecase) SetMastery(ctx context.Context, wordID string, level entity.MasteryLevel) entity.MasteryRecord {
	return u.repo.SetMastery(ctx, wordID, level)
}

func (u *masteryUsecase) UpdateByOutcome(ctx context.Context, wordID string, correct bool, policy entity.Policy) (MasteryChange, error) {
	current, found := u.repo.Get(ctx, wordID)
	previous := entity.MasteryNew
	if found {
		previous = current.Level
	}
	next, err := policy.Next(previous, found, correct)
	if err != nil {
		return MasteryChange{}, err
	}
	record := u.repo.SetMastery(ctx, wordID, next)
	return MasteryChange{WordID: wordID, Previous: previous, Next: record.Level, Record: record}, nil
}

func (u *masteryUsecase) ResetAll(ctx context.Context) {
	u.repo.ResetAll(ctx)
}
