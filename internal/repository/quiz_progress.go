package repository

import (
	"context"

	"github.com/eslsoft/hskdeck/internal/entity"
)

// QuizProgressRepository persists one resumable quiz cursor per level.
type QuizProgressRepository interface {
	Save(ctx context.Context, level int, progress entity.QuizProgress)
	Load(ctx context.Context) map[int]entity.QuizProgress
	Reset(ctx context.Context, level int)
}
