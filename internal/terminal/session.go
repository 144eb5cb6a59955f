package terminal

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/term"
)

var ErrNotTerminal = errors.New("not a terminal")

const (
	hideCursor   = "\x1b[?25l"
	showCursor   = "\x1b[?25h"
	enableMouse  = "\x1b[?1000h\x1b[?1006h"
	disableMouse = "\x1b[?1006l\x1b[?1000l"
)

// Session owns the terminal for the length of a game: raw mode, a hidden
// cursor and mouse reporting. It is both the input provider and the renderer.
type Session struct {
	*Screen
	*Keyboard

	fd    int
	state *term.State

	closeOnce sync.Once
	closeErr  error
}

// Open prepares in/out for play. Callers must Close the session on every exit
// path to give the terminal back in a usable state.
func Open(logger *slog.Logger, in, out *os.File) (*Session, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%w: %s", ErrNotTerminal, in.Name())
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enable raw mode: %w", err)
	}

	session := &Session{
		Screen:   NewScreen(logger, out),
		Keyboard: NewKeyboard(logger, in),
		fd:       fd,
		state:    state,
	}

	session.write(hideCursor + enableMouse)
	session.clear()

	return session, nil
}

// Close undoes everything Open did. It is safe to call more than once.
func (that *Session) Close() error {
	that.closeOnce.Do(func() {
		that.write(disableMouse + showCursor)

		if err := term.Restore(that.fd, that.state); err != nil {
			that.closeErr = fmt.Errorf("failed to restore terminal: %w", err)
		}
	})

	return that.closeErr
}
