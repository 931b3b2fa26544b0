package usecase

import (
	"context"
	"fmt"

	"github.com/eslsoft/hskdeck/internal/entity"
	"github.com/eslsoft/hskdeck/internal/repository"
)

// VocabUsecase browses the catalog together with the learner's mastery.
type VocabUsecase interface {
	List(ctx context.Context, query *repository.ListVocabQuery) ([]entity.LearnedWord, int, error)
	Show(ctx context.Context, id string) (*entity.LearnedWord, error)
}

func NewVocabUsecase(repo repository.LearnedWordRepository) VocabUsecase {
	return &vocabUsecase{repo: repo}
}

type vocabUsecase struct {
	repo repository.LearnedWordRepository
}

func (u *vocabUsecase) List(ctx context.Context, query *repository.ListVocabQuery) ([]entity.LearnedWord, int, error) {
	if query == nil {
		query = &repository.ListVocabQuery{}
	}
	if query.Level != 0 && !entity.ValidLevel(query.Level) {
		return nil, 0, fmt.Errorf("%w: %d", entity.ErrInvalidLevel, query.Level)
	}
	if query.PageSize < 0 {
		query.PageSize = 0
	}
	return u.repo.List(ctx, query)
}

func (u *vocabUsecase) Show(ctx context.Context, id string) (*entity.LearnedWord, error) {
	word, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("show %q: %w", id, err)
	}
	return word, nil
}
