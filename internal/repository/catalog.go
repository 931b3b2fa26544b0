package repository

import "github.com/eslsoft/hskdeck/internal/entity"

// ListVocabQuery holds parameters for browsing the catalog.
type ListVocabQuery struct {
	Pagination
	FilterOrder

	// Level restricts results to one HSK level; zero means every level.
	Level int
}

// Catalog is the read-only vocabulary lookup. Unknown levels and ids never fail.
type Catalog interface {
	Levels() []int
	ByLevel(level int) []entity.VocabEntry
	All() []entity.VocabEntry
	FindByID(id string) (entity.VocabEntry, bool)
	CountByLevel(level int) int
}
