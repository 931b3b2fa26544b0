package app

import (
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/hskdeck/internal/infrastructure/config"
	"github.com/eslsoft/hskdeck/internal/repository"
	"github.com/eslsoft/hskdeck/internal/usecase"
	"github.com/eslsoft/hskdeck/internal/usecase/backup"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Config   *config.Config
	Logger   *logrus.Logger
	Catalog  repository.Catalog
	Mastery  usecase.MasteryUsecase
	Stats    usecase.StatsUsecase
	Quiz     usecase.QuizUsecase
	Practice usecase.PracticeUsecase
	Vocab    usecase.VocabUsecase
	Backup   *backup.Service
}
