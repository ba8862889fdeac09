package domain

import "strconv"

// Move is one entry of the time-travel list. Step doubles as its identity,
// which holds only because history is append/truncate-only.
type Move struct {
	Step  int
	Label string
}

// Game holds the snapshot history of a Tic-Tac-Toe match and the step
// currently displayed.
//
// Snapshots are never written in place and every accepted move allocates a
// fresh backing array, so a copied Game value keeps its own history intact.
// The zero value has no start board; use New.
type Game struct {
	history []Board
	step    int
}

// New returns a new game at the empty board with X to move.
func New() *Game {
	return &Game{history: []Board{{}}}
}

// Play places the next mark at cell (0..8) on the displayed board. Moves on
// an occupied cell, outside the board, or after a win are ignored and
// reported as false. Any snapshots after the displayed step are discarded.
func (g *Game) Play(cell int) bool {
	if cell < 0 || cell >= len(Board{}) {
		return false
	}
	cur := g.Board()
	if Winner(cur) != Empty || cur[cell] != Empty {
		return false
	}
	next := cur
	next[cell] = g.Next()

	n := g.step + 1
	g.history = append(g.history[:n:n], next)
	g.step = n
	return true
}

// JumpTo displays the snapshot at step. History is left untouched.
func (g *Game) JumpTo(step int) bool {
	if step < 0 || step >= len(g.history) {
		return false
	}
	g.step = step
	return true
}

// Board returns the displayed snapshot.
func (g *Game) Board() Board { return g.history[g.step] }

// Step returns the index of the displayed snapshot.
func (g *Game) Step() int { return g.step }

// Len returns the number of snapshots, including the empty start board.
func (g *Game) Len() int { return len(g.history) }

// History returns a copy of all snapshots.
func (g *Game) History() []Board {
	out := make([]Board, len(g.history))
	copy(out, g.history)
	return out
}

// Next returns the mark to be placed from the displayed step.
func (g *Game) Next() Cell {
	if g.step%2 == 0 {
		return X
	}
	return O
}

// Winner evaluates the displayed board.
func (g *Game) Winner() Cell { return Winner(g.Board()) }

// Draw reports a full board without a winner.
func (g *Game) Draw() bool {
	return g.Winner() == Empty && g.Board().Full()
}

// Status returns the text shown above the board.
func (g *Game) Status() string {
	if w := g.Winner(); w != Empty {
		return "Winner: " + w.String()
	}
	if g.Draw() {
		return "Draw"
	}
	return "Next player: " + g.Next().String()
}

// Moves lists every snapshot as a jump target.
func (g *Game) Moves() []Move {
	out := make([]Move, len(g.history))
	for i := range g.history {
		label := "Go to game start"
		if i > 0 {
			label = "Go to move #" + strconv.Itoa(i)
		}
		out[i] = Move{Step: i, Label: label}
	}
	return out
}
