package usecase

import (
	"context"
	"testing"

	"github.com/eslsoft/hskdeck/internal/entity"
)

func TestComputeLevelStatsRemainder(t *testing.T) {
	repo := newFakeMasteryRepo()
	repo.seed("1-1", entity.MasteryFamiliar)
	repo.seed("1-2", entity.MasteryFamiliar)
	repo.seed("1-3", entity.MasteryKnown)
	repo.seed("1-4", entity.MasteryMastered)
	repo.seed("1-5", entity.MasteryNew)

	uc := NewStatsUsecase(newFakeCatalog(), repo, false)
	stats := uc.ComputeLevelStats(context.Background(), 1, 10)

	want := entity.LevelStats{New: 6, Familiar: 2, Known: 1, Mastered: 1}
	if stats != want {
		t.Fatalf("expected %+v, got %+v", want, stats)
	}
	if sum := stats.New + stats.Learned(); sum != 10 {
		t.Fatalf("expected buckets to sum to 10, got %d", sum)
	}
}

func TestComputeLevelStatsCountsEveryLevelByDefault(t *testing.T) {
	catalog := newFakeCatalog(append(level1Words(), word(2, 1, "白", "bái", "Trắng"))...)
	repo := newFakeMasteryRepo()
	repo.seed("2-1", entity.MasteryKnown)
	repo.seed("1-1", entity.MasteryFamiliar)

	unscoped := NewStatsUsecase(catalog, repo, false).LevelSummary(context.Background(), 1)
	if unscoped.Learned() != 2 || unscoped.New != 3 || unscoped.Total != 5 {
		t.Fatalf("unexpected unscoped summary %+v", unscoped)
	}

	scoped := NewStatsUsecase(catalog, repo, true).LevelSummary(context.Background(), 1)
	if scoped.Learned() != 1 || scoped.New != 4 || scoped.Known != 0 {
		t.Fatalf("unexpected scoped summary %+v", scoped)
	}
}

func TestDashboard(t *testing.T) {
	catalog := newFakeCatalog(append(level1Words(), word(2, 1, "白", "bái", "Trắng"), word(2, 2, "帮助", "bāngzhù", "Giúp đỡ"))...)
	repo := newFakeMasteryRepo()
	repo.seed("1-1", entity.MasteryMastered)
	repo.seed("2-2", entity.MasteryFamiliar)

	dash := NewStatsUsecase(catalog, repo, true).Dashboard(context.Background())
	if len(dash.Levels) != entity.MaxLevel {
		t.Fatalf("expected %d levels, got %d", entity.MaxLevel, len(dash.Levels))
	}
	if dash.Overall.Total != 7 {
		t.Fatalf("expected overall total 7, got %d", dash.Overall.Total)
	}
	if dash.Overall.Learned() != 2 || dash.Overall.New != 5 {
		t.Fatalf("unexpected overall %+v", dash.Overall)
	}
	if dash.Levels[0].Percentage() != 20 || dash.Levels[1].Percentage() != 50 {
		t.Fatalf("unexpected percentages %d %d", dash.Levels[0].Percentage(), dash.Levels[1].Percentage())
	}
	if dash.Levels[2].Total != 0 || dash.Levels[2].Percentage() != 0 {
		t.Fatalf("expected empty level 3, got %+v", dash.Levels[2])
	}
}
