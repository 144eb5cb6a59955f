package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

func TestNewBoard(t *testing.T) {
	// Given: a new board
	board := NewBoard()

	// Then: every cell is empty and X moves first
	assert.Equal(t, X, board.Turn)
	assert.Len(t, board.EmptyCells(), 9)
	assert.Equal(t, Undecided, board.Outcome())
}

func TestBoard_TryPlace(t *testing.T) {
	t.Run("Places the mover's mark and hands over the turn", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: X plays the center
		ok := board.TryPlace(Coordinate{Row: 1, Col: 1})

		// Then: the center holds X and O is to move
		require.True(t, ok)
		assert.Equal(t, X, board.Cells[1][1])
		assert.Equal(t, O, board.Turn)
		assert.False(t, board.IsEmpty(Coordinate{Row: 1, Col: 1}))
	})

	t.Run("Declines an occupied cell", func(t *testing.T) {
		// Given: a board where X holds the corner
		board := NewBoard()
		require.True(t, board.TryPlace(Coordinate{Row: 0, Col: 0}))
		before := board

		// When: O tries the same cell
		ok := board.TryPlace(Coordinate{Row: 0, Col: 0})

		// Then: nothing changes, marks and turn included
		assert.False(t, ok)
		assert.Equal(t, before, board)
		assert.Equal(t, X, board.Cells[0][0])
		assert.Equal(t, O, board.Turn)
	})

	t.Run("Declines a coordinate outside the grid", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: a move off the board is attempted
		ok := board.TryPlace(Coordinate{Row: 3, Col: -1})

		// Then: it is declined
		assert.False(t, ok)
		assert.Equal(t, NewBoard(), board)
	})
}

func TestBoard_Place(t *testing.T) {
	// Given: a board with X in the corner
	board := NewBoard()
	board.Place(Coordinate{Row: 0, Col: 0}, X)

	// When: the same cell is written again
	board.Place(Coordinate{Row: 0, Col: 0}, O)

	// Then: the write is unconditional and the turn is untouched
	assert.Equal(t, O, board.Cells[0][0])
	assert.Equal(t, X, board.Turn)
}

func TestBoard_Outcome(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  Outcome
	}{
		{"X completes the top row", "XXXOO....", XWins},
		{"X completes the first column", "XO.XO.X..", XWins},
		{"O completes the middle row", "XX.OOOX.X", OWins},
		{"O completes the anti-diagonal", "XXOXO.O..", OWins},
		{"X completes the main diagonal on a full board", "XOOOXXOXX", XWins},
		{"full board without a line is a tie", "XOXXOOOXX", Tie},
		{"game in progress", "XO..X....", Undecided},
		{"empty board", ".........", Undecided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board
			board, err := ParseBoard(tt.board)
			require.NoError(t, err)

			// When: determining the outcome
			got := board.Outcome()

			// Then: it matches
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBoard_OutcomeOverReachableBoards(t *testing.T) {
	seen := make(map[Board]struct{})

	var walk func(board Board)
	walk = func(board Board) {
		if _, ok := seen[board]; ok {
			return
		}
		seen[board] = struct{}{}

		outcome := board.Outcome()
		hasLine := hasThreeInARow(board)
		hasEmpty := len(board.EmptyCells()) > 0

		// undecided exactly when a cell is free and no line is complete
		require.Equal(t, hasEmpty && !hasLine, outcome == Undecided, "board %s", board)
		if outcome == Tie {
			require.False(t, hasEmpty, "board %s", board)
		}
		if outcome.IsDecided() {
			return
		}

		for _, coord := range board.EmptyCells() {
			next := board
			require.True(t, next.TryPlace(coord))
			walk(next)
		}
	}

	walk(NewBoard())

	// 5478 legal positions are reachable from the empty board
	assert.Len(t, seen, 5478)
}

func hasThreeInARow(board Board) bool {
	for _, line := range winLines {
		first := board.Cells[line[0].Row][line[0].Col]
		if first == Empty {
			continue
		}
		if board.Cells[line[1].Row][line[1].Col] == first && board.Cells[line[2].Row][line[2].Col] == first {
			return true
		}
	}
	return false
}

func TestBoard_Swapped(t *testing.T) {
	// Given: a board with O to move
	board, err := ParseBoard("XO..X....")
	require.NoError(t, err)

	// When: relabelling the players
	swapped := board.Swapped()

	// Then: marks and turn are exchanged, empty cells stay empty
	assert.Equal(t, "OX..O....", swapped.String())
	assert.Equal(t, X, swapped.Turn)
	assert.Equal(t, board, swapped.Swapped())
}

func TestParseBoard(t *testing.T) {
	t.Run("Derives the turn from the mark counts", func(t *testing.T) {
		board, err := ParseBoard("x-o_x. ..")

		require.NoError(t, err)
		assert.Equal(t, "X.O.X....", board.String())
		assert.Equal(t, O, board.Turn)
	})

	t.Run("Round-trips the canonical form", func(t *testing.T) {
		board, err := ParseBoard("XO..X..O.")

		require.NoError(t, err)
		assert.Equal(t, "XO..X..O.", board.String())
		assert.Equal(t, X, board.Turn)
	})

	t.Run("Rejects a short string", func(t *testing.T) {
		_, err := ParseBoard("XO")

		assert.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("Rejects unknown characters", func(t *testing.T) {
		_, err := ParseBoard("XO..Z....")

		assert.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("Rejects impossible mark counts", func(t *testing.T) {
		_, err := ParseBoard("OO.......")

		assert.ErrorIs(t, err, ErrInvalidBoard)
	})
}

func TestParseMark(t *testing.T) {
	mark, err := ParseMark("o")
	require.NoError(t, err)
	assert.Equal(t, O, mark)

	_, err = ParseMark("z")
	assert.ErrorIs(t, err, apperror.ErrInvalidPlayer)
}

func TestParseObjective(t *testing.T) {
	tests := []struct {
		in   string
		want Objective
	}{
		{"w", MaximizeWin},
		{"win", MaximizeWin},
		{"l", MaximizeLoss},
		{"LOSE", MaximizeLoss},
		{"t", MaximizeTie},
		{"n", AvoidTie},
		{"avoid-tie", AvoidTie},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseObjective(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseObjective("draw")

		assert.ErrorIs(t, err, apperror.ErrUnknownObjective)
	})
}
