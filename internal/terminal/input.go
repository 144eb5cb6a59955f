package terminal

import (
	"bytes"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

type eventKind uint8

const (
	eventKey eventKind = iota
	eventMouseUp
	eventQuit
)

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
)

// event is one decoded keystroke or mouse release. For mouse events x and y
// are zero-based screen coordinates.
type event struct {
	kind eventKind
	key  byte
	x, y int
}

// parseInput decodes one read from a raw-mode terminal. A read holding a single
// ESC byte is the Escape key; otherwise ESC starts a control sequence. Only SGR
// mouse reports (ESC [ < b ; x ; y M|m) are understood; other sequences are dropped.
func parseInput(chunk []byte) []event {
	if len(chunk) == 1 && chunk[0] == keyEscape {
		return []event{{kind: eventQuit}}
	}

	var events []event

	for len(chunk) > 0 {
		switch chunk[0] {
		case keyEscape:
			ev, rest, ok := parseSequence(chunk[1:])
			if ok {
				events = append(events, ev)
			}
			chunk = rest
		case keyCtrlC, 'q', 'Q':
			events = append(events, event{kind: eventQuit})
			chunk = chunk[1:]
		default:
			events = append(events, event{kind: eventKey, key: chunk[0]})
			chunk = chunk[1:]
		}
	}

	return events
}

// parseSequence consumes a control sequence that followed ESC and reports
// whether it was a mouse release.
func parseSequence(chunk []byte) (event, []byte, bool) {
	if len(chunk) == 0 || chunk[0] != '[' {
		return event{}, chunk, false
	}
	chunk = chunk[1:]

	// a CSI sequence ends with a byte in 0x40..0x7e
	end := bytes.IndexFunc(chunk, func(r rune) bool { return r >= 0x40 && r <= 0x7e })
	if end < 0 {
		return event{}, nil, false
	}

	body, final, rest := chunk[:end], chunk[end], chunk[end+1:]
	if final != 'm' || len(body) == 0 || body[0] != '<' {
		return event{}, rest, false
	}

	fields := bytes.Split(body[1:], []byte{';'})
	if len(fields) != 3 {
		return event{}, rest, false
	}

	x, errX := strconv.Atoi(string(fields[1]))
	y, errY := strconv.Atoi(string(fields[2]))
	if errX != nil || errY != nil {
		return event{}, rest, false
	}

	// SGR reports are one-based
	return event{kind: eventMouseUp, x: x - 1, y: y - 1}, rest, true
}

// moveBuilder collects a row digit and a column letter until both are known.
type moveBuilder struct {
	row, col       int
	hasRow, hasCol bool
}

// feed returns the finished cell, or quit, once ev completes a request.
func (that *moveBuilder) feed(ev event) (row, col int, quit, done bool) {
	switch ev.kind {
	case eventQuit:
		return 0, 0, true, true
	case eventMouseUp:
		if r, c, ok := cellAt(ev.x, ev.y); ok {
			return r, c, false, true
		}
	case eventKey:
		switch {
		case ev.key >= '1' && ev.key <= '3':
			that.row, that.hasRow = int(ev.key-'1'), true
		case ev.key >= 'a' && ev.key <= 'c':
			that.col, that.hasCol = int(ev.key-'a'), true
		}
	}

	if that.hasRow && that.hasCol {
		return that.row, that.col, false, true
	}

	return 0, 0, false, false
}

// cellAt maps a screen position onto the grid drawn by Screen.Render.
func cellAt(x, y int) (int, int, bool) {
	if y < boardTop+1 || x < boardLeft {
		return 0, 0, false
	}

	row, col := y-boardTop-1, (x-boardLeft)/2
	if row >= entity.BoardSize || col >= entity.BoardSize {
		return 0, 0, false
	}

	return row, col, true
}
