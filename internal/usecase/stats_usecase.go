package usecase

import (
	"context"

	"github.com/eslsoft/hskdeck/internal/entity"
	"github.com/eslsoft/hskdeck/internal/repository"
)

// StatsUsecase aggregates mastery records into per-level and overall counters.
type StatsUsecase interface {
	// ComputeLevelStats buckets records and derives New as totalWords minus learned words.
	ComputeLevelStats(ctx context.Context, level, totalWords int) entity.LevelStats
	LevelSummary(ctx context.Context, level int) entity.LevelSummary
	Dashboard(ctx context.Context) entity.Dashboard
}

// NewStatsUsecase builds the statistics engine. With scopeByLevel unset every record counts
// toward every level, which is how progress has always been reported; set it to count only
// the level's own words.
func NewStatsUsecase(catalog repository.Catalog, mastery repository.MasteryRepository, scopeByLevel bool) StatsUsecase {
	return &statsUsecase{catalog: catalog, mastery: mastery, scopeByLevel: scopeByLevel}
}

type statsUsecase struct {
	catalog      repository.Catalog
	mastery      repository.MasteryRepository
	scopeByLevel bool
}

func (u *statsUsecase) ComputeLevelStats(ctx context.Context, level, totalWords int) entity.LevelStats {
	return u.bucket(u.mastery.GetAll(ctx), level, totalWords)
}

func (u *statsUsecase) LevelSummary(ctx context.Context, level int) entity.LevelSummary {
	total := u.catalog.CountByLevel(level)
	return entity.LevelSummary{Level: level, Total: total, LevelStats: u.ComputeLevelStats(ctx, level, total)}
}

func (u *statsUsecase) Dashboard(ctx context.Context) entity.Dashboard {
	records := u.mastery.GetAll(ctx)
	var dash entity.Dashboard
	for _, level := range u.catalog.Levels() {
		total := u.catalog.CountByLevel(level)
		summary := entity.LevelSummary{Level: level, Total: total, LevelStats: u.bucket(records, level, total)}
		dash.Levels = append(dash.Levels, summary)
		dash.Overall.Total += total
		dash.Overall.LevelStats = dash.Overall.LevelStats.Add(summary.LevelStats)
	}
	return dash
}

func (u *statsUsecase) bucket(records map[string]entity.MasteryRecord, level, totalWords int) entity.LevelStats {
	var stats entity.LevelStats
	for id, rec := range records {
		if u.scopeByLevel {
			entry, ok := u.catalog.FindByID(id)
			if !ok || entry.Level != level {
				continue
			}
		}
		switch rec.Level {
		case entity.MasteryFamiliar:
			stats.Familiar++
		case entity.MasteryKnown:
			stats.Known++
		case entity.MasteryMastered:
			stats.Mastered++
		}
	}
	stats.New = totalWords - stats.Learned()
	return stats
}
