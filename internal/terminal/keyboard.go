package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const readBufferSize = 64

type readResult struct {
	data []byte
	err  error
}

// Keyboard turns raw terminal input into move requests. Reading happens on a
// background goroutine so that RequestMove can give up when ctx is done.
type Keyboard struct {
	logger  *slog.Logger
	reads   chan readResult
	pending []event
}

// NewKeyboard starts reading from in. The reader goroutine exits when in
// returns an error; on a terminal that is process exit.
func NewKeyboard(logger *slog.Logger, in io.Reader) *Keyboard {
	keyboard := &Keyboard{
		logger: logger.With("component", "keyboard"),
		reads:  make(chan readResult),
	}

	go keyboard.readLoop(in)

	return keyboard
}

func (that *Keyboard) readLoop(in io.Reader) {
	buf := make([]byte, readBufferSize)

	for {
		n, err := in.Read(buf)
		if n > 0 {
			data := make([]byte, n)
			copy(data, buf[:n])
			that.reads <- readResult{data: data}
		}

		if err != nil {
			that.reads <- readResult{err: err}
			return
		}
	}
}

// RequestMove blocks until the player names a cell, by keys or by clicking,
// or asks to quit. End of input counts as a quit.
func (that *Keyboard) RequestMove(ctx context.Context) (entity.MoveRequest, error) {
	var builder moveBuilder

	for {
		for len(that.pending) > 0 {
			ev := that.pending[0]
			that.pending = that.pending[1:]

			row, col, quit, done := builder.feed(ev)
			if !done {
				continue
			}

			if quit {
				return entity.QuitRequest(), nil
			}

			return entity.MoveAt(row, col), nil
		}

		select {
		case <-ctx.Done():
			return entity.MoveRequest{}, ctx.Err()
		case res := <-that.reads:
			if errors.Is(res.err, io.EOF) {
				that.logger.Debug("input closed")
				return entity.QuitRequest(), nil
			}

			if res.err != nil {
				return entity.MoveRequest{}, fmt.Errorf("failed to read input: %w", res.err)
			}

			that.pending = append(that.pending, parseInput(res.data)...)
		}
	}
}
