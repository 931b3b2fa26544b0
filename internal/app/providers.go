package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	adapterrepo "github.com/eslsoft/hskdeck/internal/adapter/repository"
	"github.com/eslsoft/hskdeck/internal/infrastructure/config"
	"github.com/eslsoft/hskdeck/internal/infrastructure/vocabdata"
	"github.com/eslsoft/hskdeck/internal/repository"
	"github.com/eslsoft/hskdeck/internal/usecase"
	"github.com/eslsoft/hskdeck/internal/usecase/backup"
)

func provideCatalog(cfg *config.Config) (*adapterrepo.Catalog, error) {
	parts, err := vocabdata.LoadDir(cfg.Catalog.Dir)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return adapterrepo.NewCatalog(parts)
}

func provideStatsUsecase(cfg *config.Config, catalog repository.Catalog, mastery repository.MasteryRepository) usecase.StatsUsecase {
	return usecase.NewStatsUsecase(catalog, mastery, cfg.Stats.ScopeByLevel)
}

func provideQuizUsecase(
	cfg *config.Config,
	catalog repository.Catalog,
	mastery usecase.MasteryUsecase,
	stats usecase.StatsUsecase,
	progress repository.QuizProgressRepository,
) usecase.QuizUsecase {
	return usecase.NewQuizUsecase(catalog, mastery, stats, progress, cfg.Quiz.OptionCount)
}

func providePracticeSettings(cfg *config.Config) usecase.PracticeSettings {
	return usecase.PracticeSettings{
		MatchingPairs:    cfg.Matching.Pairs,
		WritingBatchSize: cfg.Writing.BatchSize,
	}
}

func provideBackupService(kv repository.KeyValueStore, logger logrus.FieldLogger) (*backup.Service, error) {
	return backup.NewService(kv, logger, adapterrepo.PersistedKeys)
}
