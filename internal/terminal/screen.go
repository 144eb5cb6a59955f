package terminal

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// The board is drawn from the top-left corner: a header line of column
// letters, then one line per row starting at boardTop+1. Cell (r, c) sits at
// screen column boardLeft+1+2c.
const (
	boardTop  = 0
	boardLeft = 2

	resultLine = boardTop + entity.BoardSize + 1
	promptLine = resultLine + 1
)

// Screen draws boards and results with ANSI cursor addressing.
type Screen struct {
	logger *slog.Logger
	out    io.Writer
}

func NewScreen(logger *slog.Logger, out io.Writer) *Screen {
	return &Screen{
		logger: logger.With("component", "screen"),
		out:    out,
	}
}

func (that *Screen) Render(board entity.Board) {
	that.moveTo(0, boardTop)
	that.write("   a b c")

	for row := 0; row < entity.BoardSize; row++ {
		that.moveTo(0, boardTop+1+row)
		that.write(fmt.Sprintf("%d |%s|%s|%s|",
			row+1,
			board.Cells[row][0],
			board.Cells[row][1],
			board.Cells[row][2],
		))
	}
}

// RenderResult prints how the game ended below the board and leaves the
// cursor on the following line. A quit prints nothing.
func (that *Screen) RenderResult(result entity.GameResult) {
	if !result.Quit && result.Outcome.IsDecided() {
		that.moveTo(0, resultLine)
		that.write(result.Outcome.String())
	}

	that.moveTo(0, promptLine)
}

func (that *Screen) clear() {
	that.write("\x1b[2J")
}

func (that *Screen) moveTo(x, y int) {
	that.write(fmt.Sprintf("\x1b[%d;%dH", y+1, x+1))
}

func (that *Screen) write(s string) {
	if _, err := io.WriteString(that.out, s); err != nil {
		that.logger.Error("failed to write to terminal", "error", err)
	}
}
