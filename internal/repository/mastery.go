package repository

import (
	"context"

	"github.com/eslsoft/hskdeck/internal/entity"
)

// MasteryRepository owns the per-word mastery mapping. Implementations swallow and log
// storage failures: reads degrade to an empty mapping and writes become no-ops.
type MasteryRepository interface {
	GetAll(ctx context.Context) map[string]entity.MasteryRecord
	Get(ctx context.Context, wordID string) (entity.MasteryRecord, bool)
	SetMastery(ctx context.Context, wordID string, level entity.MasteryLevel) entity.MasteryRecord
	ResetAll(ctx context.Context)
}
