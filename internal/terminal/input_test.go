package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name  string
		chunk string
		want  []event
	}{
		{"lone escape is a quit", "\x1b", []event{{kind: eventQuit}}},
		{"q quits", "q", []event{{kind: eventQuit}}},
		{"ctrl-c quits", "\x03", []event{{kind: eventQuit}}},
		{"plain keys", "2b", []event{{kind: eventKey, key: '2'}, {kind: eventKey, key: 'b'}}},
		{"mouse release", "\x1b[<0;4;2m", []event{{kind: eventMouseUp, x: 3, y: 1}}},
		{"mouse press is ignored", "\x1b[<0;4;2M", nil},
		{"arrow key is ignored", "\x1b[A1", []event{{kind: eventKey, key: '1'}}},
		{"press and release in one read", "\x1b[<0;8;4M\x1b[<0;8;4m", []event{{kind: eventMouseUp, x: 7, y: 3}}},
		{"truncated sequence is dropped", "\x1b[<0;4", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseInput([]byte(tt.chunk))

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		row, col int
		ok       bool
	}{
		{"first cell", 3, 1, 0, 0, true},
		{"left border of the first cell", 2, 1, 0, 0, true},
		{"center", 5, 2, 1, 1, true},
		{"last cell", 7, 3, 2, 2, true},
		{"header line", 3, 0, 0, 0, false},
		{"row labels", 0, 2, 0, 0, false},
		{"right of the grid", 9, 2, 0, 0, false},
		{"below the grid", 3, 4, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := cellAt(tt.x, tt.y)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.row, row)
				assert.Equal(t, tt.col, col)
			}
		})
	}
}

func TestMoveBuilder(t *testing.T) {
	t.Run("Column before row", func(t *testing.T) {
		var builder moveBuilder

		_, _, _, done := builder.feed(event{kind: eventKey, key: 'c'})
		assert.False(t, done)

		row, col, quit, done := builder.feed(event{kind: eventKey, key: '2'})
		assert.True(t, done)
		assert.False(t, quit)
		assert.Equal(t, 1, row)
		assert.Equal(t, 2, col)
	})

	t.Run("Latest row wins", func(t *testing.T) {
		var builder moveBuilder

		builder.feed(event{kind: eventKey, key: '1'})
		builder.feed(event{kind: eventKey, key: 'x'})
		builder.feed(event{kind: eventKey, key: '3'})
		row, col, _, done := builder.feed(event{kind: eventKey, key: 'a'})

		assert.True(t, done)
		assert.Equal(t, 2, row)
		assert.Equal(t, 0, col)
	})

	t.Run("Click outside the grid keeps waiting", func(t *testing.T) {
		var builder moveBuilder

		_, _, _, done := builder.feed(event{kind: eventMouseUp, x: 20, y: 20})

		assert.False(t, done)
	})
}
