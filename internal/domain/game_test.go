package domain

import (
	"reflect"
	"testing"
)

// helper to apply a sequence of moves
func playMoves(t *testing.T, g *Game, cells ...int) {
	t.Helper()
	for i, c := range cells {
		if !g.Play(c) {
			t.Fatalf("move %d (cell %d) rejected", i, c)
		}
	}
}

func TestNewGameInitialState(t *testing.T) {
	g := New()
	if g.Next() != X {
		t.Fatalf("expected initial turn X, got %v", g.Next())
	}
	if g.Len() != 1 || g.Step() != 0 {
		t.Fatalf("expected single start snapshot, len=%d step=%d", g.Len(), g.Step())
	}
	if g.Board() != (Board{}) {
		t.Fatalf("expected empty board, got %v", g.Board())
	}
	if g.Status() != "Next player: X" {
		t.Fatalf("unexpected status %q", g.Status())
	}
}

func TestPlayOutOfBounds(t *testing.T) {
	g := New()
	for _, c := range []int{-1, 9, 42} {
		if g.Play(c) {
			t.Fatalf("expected cell %d to be rejected", c)
		}
	}
	if g.Len() != 1 {
		t.Fatalf("rejected moves changed history, len=%d", g.Len())
	}
}

func TestPlayOccupied(t *testing.T) {
	g := New()
	playMoves(t, g, 0)
	if g.Play(0) {
		t.Fatalf("expected occupied cell to be rejected")
	}
	if g.Len() != 2 || g.Step() != 1 || g.Next() != O {
		t.Fatalf("state changed after rejected move: len=%d step=%d next=%v", g.Len(), g.Step(), g.Next())
	}
}

func TestTurnAlternation(t *testing.T) {
	g := New()
	playMoves(t, g, 4)
	if g.Board()[4] != X {
		t.Fatalf("expected X at 4, got %v", g.Board()[4])
	}
	if g.Next() != O {
		t.Fatalf("expected turn to flip to O, got %v", g.Next())
	}
	g.JumpTo(0)
	if g.Next() != X {
		t.Fatalf("expected X after jumping to start, got %v", g.Next())
	}
}

func TestSnapshotDiffersByOneCell(t *testing.T) {
	g := New()
	playMoves(t, g, 0, 4, 1, 3, 8, 5)
	h := g.History()
	for i := 1; i < len(h); i++ {
		diff := 0
		for c := range h[i] {
			if h[i][c] != h[i-1][c] {
				diff++
				if h[i-1][c] != Empty {
					t.Fatalf("step %d overwrote non-empty cell %d", i, c)
				}
			}
		}
		if diff != 1 {
			t.Fatalf("step %d differs from previous in %d cells", i, diff)
		}
	}
}

func TestWinTopRow(t *testing.T) {
	g := New()
	playMoves(t, g, 0, 4, 1, 3, 2)
	if g.Winner() != X {
		t.Fatalf("expected X to win, got %v", g.Winner())
	}
	if g.Status() != "Winner: X" {
		t.Fatalf("unexpected status %q", g.Status())
	}
}

func TestWinConditionsForO(t *testing.T) {
	for _, ln := range lines {
		g := New()
		fill := xFillers(ln)
		playMoves(t, g, fill[0], ln[0], fill[1], ln[1], fill[2], ln[2])
		if g.Winner() != O {
			t.Fatalf("expected O to win on line %v, got %v", ln, g.Winner())
		}
		if g.Len() != 7 {
			t.Fatalf("expected 6 moves to win for O, got %d", g.Len()-1)
		}
	}
}

// xFillers picks three cells off ln that do not give X a line of their own.
func xFillers(ln [3]int) [3]int {
	var free []int
	for c := 0; c < 9; c++ {
		if c != ln[0] && c != ln[1] && c != ln[2] {
			free = append(free, c)
		}
	}
	for i := 0; i < len(free); i++ {
		for j := i + 1; j < len(free); j++ {
			for k := j + 1; k < len(free); k++ {
				var b Board
				b[free[i]], b[free[j]], b[free[k]] = X, X, X
				if Winner(b) == Empty {
					return [3]int{free[i], free[j], free[k]}
				}
			}
		}
	}
	panic("no filler")
}

func TestDrawNoWinner(t *testing.T) {
	g := New()
	playMoves(t, g, 0, 1, 2, 4, 3, 5, 7, 6, 8)
	if !g.Draw() {
		t.Fatalf("expected draw")
	}
	if g.Winner() != Empty {
		t.Fatalf("expected no winner on draw, got %v", g.Winner())
	}
	if g.Status() != "Draw" {
		t.Fatalf("unexpected status %q", g.Status())
	}
	if g.Play(0) {
		t.Fatalf("expected full board to reject moves")
	}
}

func TestGameOverBlocksFurtherMoves(t *testing.T) {
	g := New()
	playMoves(t, g, 0, 3, 1, 4, 2)
	before := g.History()
	step := g.Step()
	if g.Play(8) {
		t.Fatalf("expected move after win to be rejected")
	}
	if g.Step() != step || !reflect.DeepEqual(before, g.History()) {
		t.Fatalf("state changed after rejected move")
	}
}

func TestJumpTo(t *testing.T) {
	g := New()
	playMoves(t, g, 0, 4)
	if !g.JumpTo(1) || g.Step() != 1 {
		t.Fatalf("expected jump to step 1")
	}
	if g.Len() != 3 {
		t.Fatalf("jump changed history length to %d", g.Len())
	}
	for _, s := range []int{-1, 3, 100} {
		if g.JumpTo(s) {
			t.Fatalf("expected jump to %d to be rejected", s)
		}
	}
	if g.Step() != 1 {
		t.Fatalf("rejected jump moved cursor to %d", g.Step())
	}
}

func TestJumpToCurrentIsIdempotent(t *testing.T) {
	g := New()
	playMoves(t, g, 0, 4, 8)
	before := *g
	g.JumpTo(g.Step())
	if g.Step() != before.Step() || !reflect.DeepEqual(g.History(), before.History()) {
		t.Fatalf("jump to current step changed state")
	}
}

func TestBranchTruncatesFuture(t *testing.T) {
	g := New()
	playMoves(t, g, 0, 4, 1, 3)
	if g.Len() != 5 {
		t.Fatalf("expected 5 snapshots, got %d", g.Len())
	}
	old := g.History()

	g.JumpTo(2)
	playMoves(t, g, 8)
	if g.Len() != 4 {
		t.Fatalf("expected history truncated to 3 then appended, got len %d", g.Len())
	}
	h := g.History()
	if !reflect.DeepEqual(h[:3], old[:3]) {
		t.Fatalf("snapshots before the branch point changed")
	}
	if h[3][3] != Empty || h[3][8] != X {
		t.Fatalf("expected branch snapshot with X at 8 and cell 3 empty, got %v", h[3])
	}
	if old[4][3] != O || old[3][1] != X {
		t.Fatalf("previously returned snapshots were mutated")
	}
}

func TestBranchFromBeforeWin(t *testing.T) {
	g := New()
	playMoves(t, g, 0, 4, 1, 3, 2)
	if g.Winner() != X {
		t.Fatalf("expected X win")
	}
	// earlier step, no winner there: moves resume and the winning branch is dropped
	g.JumpTo(3)
	if g.Winner() != Empty {
		t.Fatalf("expected no winner at step 3")
	}
	playMoves(t, g, 2)
	if g.Board()[2] != O {
		t.Fatalf("expected O to block at 2, got %v", g.Board()[2])
	}
	if g.Len() != 5 || g.JumpTo(5) {
		t.Fatalf("expected winning snapshot to be discarded, len=%d", g.Len())
	}
	if g.Status() != "Next player: X" {
		t.Fatalf("unexpected status %q", g.Status())
	}
}

func TestCopiedGameKeepsHistory(t *testing.T) {
	g := New()
	playMoves(t, g, 0, 4, 1)
	cp := *g
	g.JumpTo(1)
	playMoves(t, g, 8)
	if cp.Len() != 4 || cp.Step() != 3 {
		t.Fatalf("copy changed: len=%d step=%d", cp.Len(), cp.Step())
	}
	if cp.History()[2][4] != O || cp.History()[3][1] != X {
		t.Fatalf("copy history overwritten: %v", cp.History())
	}
}

func TestMoves(t *testing.T) {
	g := New()
	playMoves(t, g, 0, 4)
	want := []Move{
		{Step: 0, Label: "Go to game start"},
		{Step: 1, Label: "Go to move #1"},
		{Step: 2, Label: "Go to move #2"},
	}
	if got := g.Moves(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected moves %v", got)
	}
}
