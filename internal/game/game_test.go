package game

import (
	"testing"

	"github.com/alexracape/blokus-engine/internal/board"
)

func TestMonominoAtCornerThenAnchorMoves(t *testing.T) {
	g := Reset()
	if err := g.Apply(0); err != nil {
		t.Fatalf("expected monomino placement at tile 0 to succeed: %v", err)
	}
	if g.Board.Occupant(0) != 0 {
		t.Fatalf("expected cell 0 owned by player 0")
	}
	if !g.Board.Forbidden(1, 0) || !g.Board.Forbidden(20, 0) {
		t.Fatal("expected orthogonal neighbors forbidden to player 0")
	}
	seat, ok := g.CurrentPlayer()
	if !ok || seat != 1 {
		t.Fatalf("expected turn to advance to player 1, got seat=%d ok=%v", seat, ok)
	}
}

func TestAllFourCornersThenNotTerminal(t *testing.T) {
	g := Reset()
	corners := []int{0, 19, 399, 380}
	for i, c := range corners {
		seat, ok := g.CurrentPlayer()
		if !ok || seat != i {
			t.Fatalf("expected seat %d to move, got %d", i, seat)
		}
		if err := g.Apply(c); err != nil {
			t.Fatalf("seat %d: placing corner %d failed: %v", i, c, err)
		}
	}
	if g.IsTerminal() {
		t.Fatal("expected game to still be in progress after one round")
	}
	for p, corner := range corners {
		if g.Board.Occupant(corner) != p {
			t.Errorf("expected corner %d owned by player %d", corner, p)
		}
	}
}

func TestDominoPlacementCollapsesLegalIndex(t *testing.T) {
	g := Reset()
	if err := g.Apply(0); err != nil {
		t.Fatalf("monomino for seat 0 failed: %v", err)
	}
	// Now seat 1 at corner 19 places its monomino too, then seat 2, seat 3,
	// looping back to seat 0 which now plays its domino starting at tile 21
	// (its only remaining anchor after the monomino commit).
	if err := g.Apply(19); err != nil {
		t.Fatalf("seat 1 monomino failed: %v", err)
	}
	if err := g.Apply(399); err != nil {
		t.Fatalf("seat 2 monomino failed: %v", err)
	}
	if err := g.Apply(380); err != nil {
		t.Fatalf("seat 3 monomino failed: %v", err)
	}

	seat, ok := g.CurrentPlayer()
	if !ok || seat != 0 {
		t.Fatalf("expected seat 0 to move again, got %d", seat)
	}
	if _, ok := g.LegalIndex[21]; !ok {
		t.Fatalf("expected tile 21 (seat 0's sole anchor) to be legal, index=%v", g.LegalIndex)
	}

	before := len(g.LegalIndex)
	if err := g.Apply(21); err != nil {
		t.Fatalf("placing first domino tile failed: %v", err)
	}
	if len(g.LegalIndex) == 0 {
		t.Fatal("expected domino placement to still be in progress after first tile")
	}
	if len(g.LegalIndex) >= before {
		t.Fatalf("expected legal index to narrow after first tile: before=%d after=%d", before, len(g.LegalIndex))
	}
}

func TestEliminatedSeatIsSkippedOnAdvance(t *testing.T) {
	g := Reset()
	// Seat 1 has pieces remaining but no reachable anchors, so it has no
	// legal move on its turn and must be eliminated rather than stalling
	// the game.
	g.Board.Anchors[1] = map[int]struct{}{}

	g.advanceTurn()

	for _, seat := range g.PlayersRemaining {
		if seat == 1 {
			t.Fatal("expected seat 1 to be eliminated from players remaining")
		}
	}
	if len(g.PlayersRemaining) != 3 {
		t.Fatalf("expected 3 players remaining, got %d", len(g.PlayersRemaining))
	}

	seat, ok := g.CurrentPlayer()
	if !ok || seat != 2 {
		t.Fatalf("expected seat 2 to be the next survivor to move, got seat=%d ok=%v", seat, ok)
	}
	if len(g.LegalIndex) == 0 {
		t.Fatal("expected seat 2 to have a nonempty legal index")
	}
}

func TestApplyInvalidTileReturnsError(t *testing.T) {
	g := Reset()
	if err := g.Apply(200); err != ErrInvalidMove {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
}

func TestTerminalGameRepresentationErrors(t *testing.T) {
	g := Reset()
	g.PlayersRemaining = nil
	if _, err := g.Representation(); err != ErrNoCurrentPlayer {
		t.Fatalf("expected ErrNoCurrentPlayer, got %v", err)
	}
}

func TestRepresentationChannelsRotated(t *testing.T) {
	g := Reset()
	if err := g.Apply(0); err != nil {
		t.Fatalf("seat 0 monomino failed: %v", err)
	}
	// Seat 1 to move; channel 3 is (1+3)%4 = 0, i.e. seat 0's occupancy.
	rep, err := g.Representation()
	if err != nil {
		t.Fatalf("representation failed: %v", err)
	}
	if !rep.Boards[3*board.Spaces+0] {
		t.Fatal("expected seat 0's piece to show up on channel 3 from seat 1's perspective")
	}
	if rep.Player != 1 {
		t.Fatalf("expected representation player 1, got %d", rep.Player)
	}
}

func TestPayoffSumsToOne(t *testing.T) {
	g := Reset()
	payoff := g.Payoff()
	var total float32
	for _, v := range payoff {
		total += v
	}
	if total < 0.999 || total > 1.001 {
		t.Fatalf("expected payoff to sum to 1, got %f", total)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := Reset()
	clone := g.Clone()
	if err := clone.Apply(0); err != nil {
		t.Fatalf("clone apply failed: %v", err)
	}
	if g.Board.Occupant(0) != -1 {
		t.Fatal("expected original game to be unaffected by mutation of its clone")
	}
}
