package repository

import (
	"context"

	"github.com/eslsoft/hskdeck/internal/entity"
)

// LearnedWordRepository browses catalog words joined with their mastery records.
type LearnedWordRepository interface {
	List(ctx context.Context, query *ListVocabQuery) ([]entity.LearnedWord, int, error)
	GetByID(ctx context.Context, id string) (*entity.LearnedWord, error)
}
