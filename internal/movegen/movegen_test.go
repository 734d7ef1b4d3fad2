package movegen

import (
	"testing"

	"github.com/alexracape/blokus-engine/internal/board"
	"github.com/alexracape/blokus-engine/internal/pieces"
)

func TestGenerateFreshBoardIncludesCornerTile(t *testing.T) {
	b := board.New()
	idx := Generate(b, 0)

	if _, ok := idx[0]; !ok {
		t.Fatal("expected tile 0 to be a legal-move key for player 0 on a fresh board")
	}
	if len(idx) == 0 {
		t.Fatal("expected a nonempty legal index on a fresh board")
	}
}

func TestEveryLegalPlacementIsValid(t *testing.T) {
	b := board.New()
	idx := Generate(b, 0)
	for tile, ids := range idx {
		for id := range ids {
			variant := pieces.Catalog[id.Piece].Variants[id.Variant]
			if !b.IsValid(0, variant, id.Offset) {
				t.Errorf("indexed placement %+v is not actually valid", id)
			}
			tiles := Tiles(variant, id.Offset)
			found := false
			for _, tl := range tiles {
				if tl == tile {
					found = true
				}
			}
			if !found {
				t.Errorf("placement %+v does not cover tile %d it was indexed under", id, tile)
			}
		}
	}
}

func TestUsedPieceExcludedFromIndex(t *testing.T) {
	b := board.New()
	b.Used[0][0] = true // monomino already placed
	idx := Generate(b, 0)
	for _, ids := range idx {
		for id := range ids {
			if id.Piece == 0 {
				t.Fatal("expected used piece 0 to be excluded from the legal index")
			}
		}
	}
}
