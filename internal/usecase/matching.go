package usecase

import (
	"github.com/samber/lo"

	"github.com/eslsoft/hskdeck/internal/entity"
)

type TileKind int

const (
	TileHanzi TileKind = iota
	TileMeaning
)

// MatchTile is one face-up card of the matching board.
type MatchTile struct {
	WordID  string
	Kind    TileKind
	Text    string
	Matched bool
}

type MatchOutcome int

const (
	MatchSelected MatchOutcome = iota
	MatchDeselected
	MatchMatched
	MatchMismatched
	MatchIgnored
)

func (o MatchOutcome) String() string {
	switch o {
	case MatchSelected:
		return "selected"
	case MatchDeselected:
		return "deselected"
	case MatchMatched:
		return "matched"
	case MatchMismatched:
		return "mismatched"
	default:
		return "ignored"
	}
}

// MatchingGame pairs each word's hanzi with its first translation. Mastery is untouched.
type MatchingGame struct {
	tiles    []MatchTile
	selected int
	matched  int
	mistakes int
}

// NewMatchingGame lays out two tiles per word in random order.
func NewMatchingGame(words []entity.VocabEntry) *MatchingGame {
	tiles := make([]MatchTile, 0, 2*len(words))
	for _, w := range words {
		tiles = append(tiles,
			MatchTile{WordID: w.ID, Kind: TileHanzi, Text: w.Hanzi},
			MatchTile{WordID: w.ID, Kind: TileMeaning, Text: w.PrimaryTranslation()},
		)
	}
	return &MatchingGame{tiles: lo.Shuffle(tiles), selected: -1}
}

func (g *MatchingGame) Tiles() []MatchTile { return append([]MatchTile(nil), g.tiles...) }
func (g *MatchingGame) Mistakes() int      { return g.mistakes }
func (g *MatchingGame) Completed() bool    { return g.matched*2 == len(g.tiles) }

// Selected returns the tile waiting for its partner.
func (g *MatchingGame) Selected() (int, bool) { return g.selected, g.selected >= 0 }

// Select picks the tile at i. A second pick either matches the pair or clears the selection.
func (g *MatchingGame) Select(i int) (MatchOutcome, error) {
	if i < 0 || i >= len(g.tiles) {
		return MatchIgnored, entity.ErrInvalidTileIndex
	}
	tile := g.tiles[i]
	switch {
	case tile.Matched:
		return MatchIgnored, nil
	case g.selected < 0:
		g.selected = i
		return MatchSelected, nil
	case g.selected == i:
		g.selected = -1
		return MatchDeselected, nil
	}

	first := g.tiles[g.selected]
	if first.WordID == tile.WordID && first.Kind != tile.Kind {
		g.tiles[g.selected].Matched = true
		g.tiles[i].Matched = true
		g.matched++
		g.selected = -1
		return MatchMatched, nil
	}
	g.mistakes++
	g.selected = -1
	return MatchMismatched, nil
}
