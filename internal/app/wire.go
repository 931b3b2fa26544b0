//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/hskdeck/internal/adapter/kvstore"
	adapterrepo "github.com/eslsoft/hskdeck/internal/adapter/repository"
	"github.com/eslsoft/hskdeck/internal/infrastructure/config"
	"github.com/eslsoft/hskdeck/internal/infrastructure/logging"
	"github.com/eslsoft/hskdeck/internal/repository"
	"github.com/eslsoft/hskdeck/internal/usecase"
)

var loggingSet = wire.NewSet(
	logging.NewLogger,
	wire.Bind(new(logrus.FieldLogger), new(*logrus.Logger)),
)

var storageSet = wire.NewSet(
	kvstore.Open,
)

var repositorySet = wire.NewSet(
	provideCatalog,
	wire.Bind(new(repository.Catalog), new(*adapterrepo.Catalog)),
	adapterrepo.NewMasteryStore,
	wire.Bind(new(repository.MasteryRepository), new(*adapterrepo.MasteryStore)),
	adapterrepo.NewQuizProgressStore,
	wire.Bind(new(repository.QuizProgressRepository), new(*adapterrepo.QuizProgressStore)),
	adapterrepo.NewLearnedWordRepository,
)

var usecaseSet = wire.NewSet(
	usecase.NewMasteryUsecase,
	provideStatsUsecase,
	provideQuizUsecase,
	providePracticeSettings,
	usecase.NewPracticeUsecase,
	usecase.NewVocabUsecase,
	provideBackupService,
)

// Initialize builds the application container using Wire.
func Initialize(ctx context.Context, cfg *config.Config) (*Container, func(), error) {
	wire.Build(
		loggingSet,
		storageSet,
		repositorySet,
		usecaseSet,
		wire.Struct(new(Container), "*"),
	)
	return nil, nil, nil
}
