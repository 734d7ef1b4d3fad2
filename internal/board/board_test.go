package board

import (
	"testing"

	"github.com/alexracape/blokus-engine/internal/pieces"
)

func TestNewBoardAnchors(t *testing.T) {
	b := New()
	for p, want := range startingAnchors {
		if _, ok := b.Anchors[p][want]; !ok {
			t.Errorf("player %d: expected starting anchor %d", p, want)
		}
		if len(b.Anchors[p]) != 1 {
			t.Errorf("player %d: expected exactly one starting anchor, got %d", p, len(b.Anchors[p]))
		}
	}
}

func TestIsValidMonominoAtCorner(t *testing.T) {
	b := New()
	monomino := pieces.Catalog[0].Variants[0]
	if !b.IsValid(0, monomino, 0) {
		t.Fatal("expected monomino at cell 0 to be valid for player 0")
	}
	if b.IsValid(0, monomino, 19) {
		t.Fatal("expected monomino at cell 19 to be invalid for player 0 (not an anchor)")
	}
}

func TestCommitPieceUpdatesForbidAndAnchors(t *testing.T) {
	b := New()
	monomino := pieces.Catalog[0].Variants[0]
	b.CommitPiece(0, monomino, 0)

	if b.Occupant(0) != 0 {
		t.Fatalf("expected cell 0 owned by player 0, got %d", b.Occupant(0))
	}
	if !b.Forbidden(1, 0) {
		t.Error("expected cell 1 (right neighbor) forbidden to player 0")
	}
	if !b.Forbidden(20, 0) {
		t.Error("expected cell 20 (bottom neighbor) forbidden to player 0")
	}
	if _, ok := b.Anchors[0][21]; !ok {
		t.Errorf("expected diagonal cell 21 to become an anchor, anchors=%v", b.Anchors[0])
	}
	if _, ok := b.Anchors[0][0]; ok {
		t.Error("expected starting anchor 0 to be removed after commit")
	}
}

func TestOverlappingPlacementInvalid(t *testing.T) {
	b := New()
	monomino := pieces.Catalog[0].Variants[0]
	b.CommitPiece(0, monomino, 0)
	if b.IsValid(0, monomino, 0) {
		t.Fatal("expected re-placing on an occupied cell to be invalid")
	}
}

func TestRightEdgeOverflowRejected(t *testing.T) {
	b := New()
	// I2 domino horizontal variant placed starting at the last column
	// should be rejected for wrapping onto the next row.
	domino := pieces.Catalog[1]
	var horizontal pieces.PieceVariant
	for _, v := range domino.Variants {
		if v.Width == 2 {
			horizontal = v
			break
		}
	}
	b.Anchors[0][19] = struct{}{}
	if b.IsValid(0, horizontal, 19) {
		t.Fatal("expected placement wrapping over the right edge to be invalid")
	}
}

func TestScoreAllPiecesPlacedWithMonominoLast(t *testing.T) {
	b := New()
	for p := 0; p < NumPlayers; p++ {
		for i := range pieces.Catalog {
			b.Used[p][i] = true
		}
	}
	var lastPieceSize [NumPlayers]int
	lastPieceSize[0] = 1
	lastPieceSize[1] = 2
	scores := b.Score(lastPieceSize)
	if scores[0] != 20 {
		t.Errorf("expected player 0 score 20 (15 + 5 monomino bonus), got %d", scores[0])
	}
	if scores[1] != 15 {
		t.Errorf("expected player 1 score 15 (no monomino bonus), got %d", scores[1])
	}
}

func TestScoreRemainingPiecesNegative(t *testing.T) {
	b := New()
	var lastPieceSize [NumPlayers]int
	scores := b.Score(lastPieceSize)
	total := 0
	for _, p := range pieces.Catalog {
		total += p.Points
	}
	for p := 0; p < NumPlayers; p++ {
		if scores[p] != -int32(total) {
			t.Errorf("player %d: expected score %d, got %d", p, -total, scores[p])
		}
	}
}
