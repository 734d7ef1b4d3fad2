// Package board implements the 20x20 Blokus cell grid: occupancy,
// per-player forbid bits, anchor tracking, and end-of-game scoring.
package board

import (
	"github.com/alexracape/blokus-engine/internal/pieces"
)

// Size is the board width and height in cells.
const Size = pieces.BoardWidth

// Spaces is the total number of cells on the board.
const Spaces = Size * Size

// NumPlayers is the fixed number of Blokus seats.
const NumPlayers = 4

// startingAnchors gives the single starting anchor for each seat: the
// four corners of the board.
var startingAnchors = [NumPlayers]int{0, Size - 1, Spaces - 1, Spaces - Size}

// Board is the 400-cell grid plus per-player anchor sets and piece usage.
//
// Each cell is one byte: the low nibble holds the 1-based owner (0 if
// empty), the high nibble holds four forbid bits, one per player.
type Board struct {
	Cells   [Spaces]byte
	Anchors [NumPlayers]map[int]struct{}
	Used    [NumPlayers][21]bool
}

// New creates an empty board with each player's starting corner anchor.
func New() *Board {
	b := &Board{}
	for p := 0; p < NumPlayers; p++ {
		b.Anchors[p] = map[int]struct{}{startingAnchors[p]: {}}
	}
	return b
}

// Clone deep-copies the board, suitable for an MCTS scratch simulation.
func (b *Board) Clone() *Board {
	out := &Board{
		Cells: b.Cells,
		Used:  b.Used,
	}
	for p := 0; p < NumPlayers; p++ {
		out.Anchors[p] = make(map[int]struct{}, len(b.Anchors[p]))
		for a := range b.Anchors[p] {
			out.Anchors[p][a] = struct{}{}
		}
	}
	return out
}

func forbidBit(player int) byte {
	return 1 << (4 + uint(player))
}

// Forbidden reports whether player may not place a tile at cell.
func (b *Board) Forbidden(cell, player int) bool {
	return b.Cells[cell]&forbidBit(player) != 0
}

// Occupant returns the 0-based owning player, or -1 if the cell is empty.
func (b *Board) Occupant(cell int) int {
	owner := b.Cells[cell] & 0x0F
	if owner == 0 {
		return -1
	}
	return int(owner) - 1
}

// IsValid reports whether placing variant at baseOffset is legal for player:
// it must stay on the board, not cross the right edge, avoid every cell
// forbidden to player, and touch at least one of player's anchors.
func (b *Board) IsValid(player int, variant pieces.PieceVariant, baseOffset int) bool {
	if baseOffset < 0 || baseOffset+variant.Len > Spaces {
		return false
	}
	if baseOffset%Size+variant.Width > Size {
		return false
	}

	touchesAnchor := false
	for _, off := range variant.Offsets {
		cell := baseOffset + off
		if b.Forbidden(cell, player) {
			return false
		}
		if _, ok := b.Anchors[player][cell]; ok {
			touchesAnchor = true
		}
	}
	return touchesAnchor
}

// PlaceTile writes a single cell as occupied by player, without touching
// forbid bits or anchors. Used by the incremental one-tile-at-a-time path;
// CommitPiece performs the full bookkeeping once a piece is fully placed.
func (b *Board) PlaceTile(tile, player int) {
	b.Cells[tile] = 0xF0 | byte(player+1)
}

// CommitPiece finalizes a whole-piece placement: it writes every filled
// cell as occupied, restricts orthogonal neighbors for player, proposes
// diagonal neighbors as new anchors for player, and removes every newly
// occupied cell from every seat's anchor set.
func (b *Board) CommitPiece(player int, variant pieces.PieceVariant, baseOffset int) {
	touched := make(map[int]struct{}, len(variant.Offsets))
	pBit := forbidBit(player)

	for _, off := range variant.Offsets {
		cell := baseOffset + off
		b.Cells[cell] = 0xF0 | byte(player+1)
		touched[cell] = struct{}{}

		row, col := cell/Size, cell%Size
		if col > 0 {
			b.Cells[cell-1] |= pBit
		}
		if col < Size-1 {
			b.Cells[cell+1] |= pBit
		}
		if row > 0 {
			b.Cells[cell-Size] |= pBit
		}
		if row < Size-1 {
			b.Cells[cell+Size] |= pBit
		}

		for _, d := range diagonalOffsets(row, col) {
			if b.Forbidden(d, player) {
				continue
			}
			b.Anchors[player][d] = struct{}{}
		}
	}

	for p := 0; p < NumPlayers; p++ {
		for cell := range touched {
			delete(b.Anchors[p], cell)
		}
	}
}

// diagonalOffsets returns the in-bounds diagonal neighbor cells of (row, col).
func diagonalOffsets(row, col int) []int {
	out := make([]int, 0, 4)
	for _, d := range [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		r, c := row+d[0], col+d[1]
		if r >= 0 && r < Size && c >= 0 && c < Size {
			out = append(out, r*Size+c)
		}
	}
	return out
}

// MarkUsed records that player has placed piece pieceID.
func (b *Board) MarkUsed(player, pieceID int) {
	b.Used[player][pieceID] = true
}

// Score computes the end-of-game Blokus score for each player: the
// negative total point value of unplaced pieces, plus a 15-point bonus
// for placing every piece, plus a further 5 points if the last piece
// placed was the monomino (point value 1).
func (b *Board) Score(lastPieceSize [NumPlayers]int) [NumPlayers]int32 {
	var scores [NumPlayers]int32
	for p := 0; p < NumPlayers; p++ {
		remaining := 0
		for i, piece := range pieces.Catalog {
			if !b.Used[p][i] {
				remaining += piece.Points
			}
		}
		score := -int32(remaining)
		if remaining == 0 {
			score += 15
			if lastPieceSize[p] == 1 {
				score += 5
			}
		}
		scores[p] = score
	}
	return scores
}
