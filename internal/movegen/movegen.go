// Package movegen enumerates legal Blokus placements for a player and
// builds the tile-keyed LegalIndex that the game layer collapses
// incrementally as tiles are placed.
package movegen

import (
	"github.com/alexracape/blokus-engine/internal/board"
	"github.com/alexracape/blokus-engine/internal/pieces"
)

// PlacementID identifies one way to place a piece: which piece, which of
// its variants, and the base offset the variant is anchored at. Two
// placements covering the same tiles but found via different (piece,
// variant, offset) triples are distinct.
type PlacementID struct {
	Piece   int
	Variant int
	Offset  int
}

// LegalIndex maps a board tile to the set of placements still achievable
// this turn that cover it. An empty index means the current seat has no
// legal move.
type LegalIndex map[int]map[PlacementID]struct{}

func (idx LegalIndex) add(tile int, id PlacementID) {
	bucket, ok := idx[tile]
	if !ok {
		bucket = make(map[PlacementID]struct{})
		idx[tile] = bucket
	}
	bucket[id] = struct{}{}
}

// Generate enumerates every legal placement for player on b and returns
// the resulting tile->placements index.
func Generate(b *board.Board, player int) LegalIndex {
	idx := make(LegalIndex)

	for pieceIdx, piece := range pieces.Catalog {
		if b.Used[player][pieceIdx] {
			continue
		}
		for variantIdx, variant := range piece.Variants {
			for anchor := range b.Anchors[player] {
				for _, f := range variant.Offsets {
					if f > anchor {
						continue
					}
					base := anchor - f
					if !b.IsValid(player, variant, base) {
						continue
					}
					id := PlacementID{Piece: pieceIdx, Variant: variantIdx, Offset: base}
					for _, off := range variant.Offsets {
						idx.add(base+off, id)
					}
				}
			}
		}
	}

	return idx
}

// Tiles returns the placement's covered tiles.
func Tiles(variant pieces.PieceVariant, base int) []int {
	out := make([]int, len(variant.Offsets))
	for i, off := range variant.Offsets {
		out[i] = base + off
	}
	return out
}
