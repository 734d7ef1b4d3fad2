// Package game sequences turns over the four Blokus seats on top of the
// board and move generator packages. Its central contract is Apply: the
// incremental, tile-at-a-time version of committing a piece, which drives
// the LegalIndex to a fixed point instead of requiring a caller hint about
// which piece it intends to finish.
package game

import (
	"errors"

	"github.com/alexracape/blokus-engine/internal/board"
	"github.com/alexracape/blokus-engine/internal/movegen"
	"github.com/alexracape/blokus-engine/internal/pieces"
)

// Errors returned by Apply and Representation, per the error kinds a
// self-play driver needs to distinguish.
var (
	ErrInvalidMove     = errors.New("game: tile is not a legal move for the current seat")
	ErrNoCurrentPlayer = errors.New("game: no current player, game is terminal")
)

// Entry records one placed tile for the training history.
type Entry struct {
	Seat int
	Tile int
}

// Game is a single Blokus match: the board, whose seats remain, and the
// incremental legal-move index for the seat to move.
type Game struct {
	Board            *board.Board
	PlayersRemaining []int
	PlayerIndex      int
	LegalIndex       movegen.LegalIndex
	LastPieceSize    [board.NumPlayers]int
	History          []Entry
}

// Reset starts a fresh game with all four seats and a legal index
// generated for seat 0.
func Reset() *Game {
	b := board.New()
	return &Game{
		Board:            b,
		PlayersRemaining: []int{0, 1, 2, 3},
		PlayerIndex:      0,
		LegalIndex:       movegen.Generate(b, 0),
	}
}

// Clone deep-copies the game for an MCTS scratch simulation.
func (g *Game) Clone() *Game {
	out := &Game{
		Board:            g.Board.Clone(),
		PlayersRemaining: append([]int(nil), g.PlayersRemaining...),
		PlayerIndex:      g.PlayerIndex,
		LastPieceSize:    g.LastPieceSize,
		History:          append([]Entry(nil), g.History...),
	}
	out.LegalIndex = make(movegen.LegalIndex, len(g.LegalIndex))
	for tile, ids := range g.LegalIndex {
		bucket := make(map[movegen.PlacementID]struct{}, len(ids))
		for id := range ids {
			bucket[id] = struct{}{}
		}
		out.LegalIndex[tile] = bucket
	}
	return out
}

// CurrentPlayer returns the seat to move, or false if the game is terminal.
func (g *Game) CurrentPlayer() (int, bool) {
	if len(g.PlayersRemaining) == 0 {
		return 0, false
	}
	return g.PlayersRemaining[g.PlayerIndex], true
}

// IsTerminal reports whether every seat has been eliminated.
func (g *Game) IsTerminal() bool {
	return len(g.PlayersRemaining) == 0
}

// LegalTiles returns the keys of the current legal index.
func (g *Game) LegalTiles() []int {
	tiles := make([]int, 0, len(g.LegalIndex))
	for t := range g.LegalIndex {
		tiles = append(tiles, t)
	}
	return tiles
}

// Apply places one tile of the active seat's piece. Repeated calls for the
// tiles of a single multi-tile piece narrow the LegalIndex to a fixed
// point; when it collapses to empty, the piece is complete and the turn
// advances.
func (g *Game) Apply(tile int) error {
	seat, ok := g.CurrentPlayer()
	if !ok {
		return ErrNoCurrentPlayer
	}

	survivors, ok := g.LegalIndex[tile]
	if !ok {
		return ErrInvalidMove
	}

	g.Board.PlaceTile(tile, seat)
	g.History = append(g.History, Entry{Seat: seat, Tile: tile})
	delete(g.LegalIndex, tile)

	for t, bucket := range g.LegalIndex {
		narrowed := make(map[movegen.PlacementID]struct{})
		for id := range bucket {
			if _, ok := survivors[id]; ok {
				narrowed[id] = struct{}{}
			}
		}
		if len(narrowed) == 0 {
			delete(g.LegalIndex, t)
		} else {
			g.LegalIndex[t] = narrowed
		}
	}

	if len(g.LegalIndex) == 0 {
		g.finishPiece(seat, survivors)
		g.advanceTurn()
	}

	return nil
}

// finishPiece commits the now-fully-determined piece to the board: any
// element of survivors names the same tile set, so an arbitrary one is
// used to recover the (piece, variant, offset) that was actually played.
func (g *Game) finishPiece(seat int, survivors map[movegen.PlacementID]struct{}) {
	var id movegen.PlacementID
	for id = range survivors {
		break
	}
	variant := pieces.Catalog[id.Piece].Variants[id.Variant]
	g.Board.CommitPiece(seat, variant, id.Offset)
	g.Board.MarkUsed(seat, id.Piece)
	g.LastPieceSize[seat] = pieces.Catalog[id.Piece].Points
}

// advanceTurn moves to the next seat in round-robin order, regenerating
// its legal index and eliminating it (and trying the next) if it has no
// legal move.
func (g *Game) advanceTurn() {
	for {
		if len(g.PlayersRemaining) == 0 {
			return
		}
		g.PlayerIndex = (g.PlayerIndex + 1) % len(g.PlayersRemaining)
		next := g.PlayersRemaining[g.PlayerIndex]
		g.LegalIndex = movegen.Generate(g.Board, next)
		if len(g.LegalIndex) > 0 {
			return
		}
		g.eliminateCurrent()
	}
}

// eliminateCurrent removes the seat at PlayerIndex from the game. It
// leaves PlayerIndex one step behind the seat that took its place, since
// advanceTurn's loop always advances the cursor before checking it again.
func (g *Game) eliminateCurrent() {
	g.PlayersRemaining = append(g.PlayersRemaining[:g.PlayerIndex], g.PlayersRemaining[g.PlayerIndex+1:]...)
	if len(g.PlayersRemaining) == 0 {
		return
	}
	n := len(g.PlayersRemaining)
	g.PlayerIndex = (g.PlayerIndex - 1 + n) % n
}

// Payoff returns the 4-seat payoff vector, 1 distributed uniformly among
// the tied highest scorers.
func (g *Game) Payoff() [board.NumPlayers]float32 {
	scores := g.Board.Score(g.LastPieceSize)

	best := scores[0]
	for _, s := range scores[1:] {
		if s > best {
			best = s
		}
	}

	var winners []int
	for p, s := range scores {
		if s == best {
			winners = append(winners, p)
		}
	}

	var payoff [board.NumPlayers]float32
	share := float32(1) / float32(len(winners))
	for _, p := range winners {
		payoff[p] = share
	}
	return payoff
}

// Representation is the 5x400 boolean state handed to the evaluator:
// channels 0-3 are occupancy, rotated so channel 0 is the seat to move;
// channel 4 marks the current legal tiles.
type Representation struct {
	Boards [5 * board.Spaces]bool
	Player int32
}

// Representation builds the evaluator-facing view of the current state.
// It returns ErrNoCurrentPlayer if called on a terminal game.
func (g *Game) Representation() (Representation, error) {
	seat, ok := g.CurrentPlayer()
	if !ok {
		return Representation{}, ErrNoCurrentPlayer
	}

	var rep Representation
	rep.Player = int32(seat)

	for cell := 0; cell < board.Spaces; cell++ {
		owner := g.Board.Occupant(cell)
		if owner < 0 {
			continue
		}
		channel := (owner - seat + board.NumPlayers) % board.NumPlayers
		rep.Boards[channel*board.Spaces+cell] = true
	}

	for tile := range g.LegalIndex {
		rep.Boards[4*board.Spaces+tile] = true
	}

	return rep, nil
}
