package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

// BoardSize is the side length of the grid.
const BoardSize = 3

type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

var ErrInvalidBoard = errors.New("invalid board")

// AllCoordinates lists every cell in row-major order. Anything that enumerates
// cells walks this slice so that move selection stays reproducible.
var AllCoordinates = [BoardSize * BoardSize]Coordinate{
	{0, 0}, {0, 1}, {0, 2},
	{1, 0}, {1, 1}, {1, 2},
	{2, 0}, {2, 1}, {2, 2},
}

var winLines = [8][3]Coordinate{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

func (that Mark) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// IsPlayer reports whether the mark belongs to one of the two players.
func (that Mark) IsPlayer() bool {
	return that == X || that == O
}

func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// ParseMark accepts "X" or "O" in any case.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, s)
	}
}

type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Coordinate) Valid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Board is a value type: assigning it copies the grid and the turn.
type Board struct {
	Cells [BoardSize][BoardSize]Mark
	Turn  Mark
}

// NewBoard returns an empty board with X to move.
func NewBoard() Board {
	return Board{Turn: X}
}

func (that Board) IsEmpty(coord Coordinate) bool {
	return that.Cells[coord.Row][coord.Col] == Empty
}

// Place writes mark at coord unconditionally, overwriting whatever is there.
// Callers must have checked IsEmpty already.
func (that *Board) Place(coord Coordinate, mark Mark) {
	that.Cells[coord.Row][coord.Col] = mark
}

// Apply places the current player's mark at coord and hands the turn over,
// without checking the cell.
func (that *Board) Apply(coord Coordinate) {
	that.Place(coord, that.Turn)
	that.Turn = that.Turn.Opponent()
}

// TryPlace is the checked form of Apply. It reports false and leaves the board
// untouched when coord is outside the grid or already marked.
func (that *Board) TryPlace(coord Coordinate) bool {
	if !coord.Valid() || !that.IsEmpty(coord) {
		return false
	}

	that.Apply(coord)

	return true
}

func (that Board) EmptyCells() []Coordinate {
	cells := make([]Coordinate, 0, len(AllCoordinates))
	for _, coord := range AllCoordinates {
		if that.IsEmpty(coord) {
			cells = append(cells, coord)
		}
	}

	return cells
}

func (that Board) Outcome() Outcome {
	for _, line := range winLines {
		a := that.Cells[line[0].Row][line[0].Col]
		b := that.Cells[line[1].Row][line[1].Col]
		c := that.Cells[line[2].Row][line[2].Col]
		if a != Empty && a == b && b == c {
			return outcomeFor(a)
		}
	}

	// the game goes on while any cell is free
	for _, coord := range AllCoordinates {
		if that.IsEmpty(coord) {
			return Undecided
		}
	}

	return Tie
}

// Swapped relabels X as O and O as X, including the player to move.
func (that Board) Swapped() Board {
	swapped := Board{Turn: that.Turn.Opponent()}
	for _, coord := range AllCoordinates {
		swapped.Place(coord, that.Cells[coord.Row][coord.Col].Opponent())
	}

	return swapped
}

// String returns the nine cells in row-major order with '.' for empty cells.
func (that Board) String() string {
	var sb strings.Builder
	sb.Grow(len(AllCoordinates))

	for _, coord := range AllCoordinates {
		switch that.Cells[coord.Row][coord.Col] {
		case X:
			sb.WriteByte('X')
		case O:
			sb.WriteByte('O')
		default:
			sb.WriteByte('.')
		}
	}

	return sb.String()
}

// ParseBoard reads the form produced by String. '.', '-', '_' and ' ' all
// denote an empty cell. The player to move is derived from the mark counts.
func ParseBoard(s string) (Board, error) {
	if len(s) != len(AllCoordinates) {
		return Board{}, fmt.Errorf("%w: want %d cells, got %d", ErrInvalidBoard, len(AllCoordinates), len(s))
	}

	var board Board
	var xCount, oCount int

	for i, coord := range AllCoordinates {
		switch s[i] {
		case 'X', 'x':
			board.Place(coord, X)
			xCount++
		case 'O', 'o':
			board.Place(coord, O)
			oCount++
		case '.', '-', '_', ' ':
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q at cell %d", ErrInvalidBoard, s[i], i)
		}
	}

	switch xCount - oCount {
	case 0:
		board.Turn = X
	case 1:
		board.Turn = O
	default:
		return Board{}, fmt.Errorf("%w: %d X marks against %d O marks", ErrInvalidBoard, xCount, oCount)
	}

	return board, nil
}
