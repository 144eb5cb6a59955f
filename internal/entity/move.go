package entity

// MoveRequest is what a human input provider hands back: a cell, or a request
// to abandon the game.
type MoveRequest struct {
	Coordinate Coordinate
	Quit       bool
}

func QuitRequest() MoveRequest {
	return MoveRequest{Quit: true}
}

func MoveAt(row, col int) MoveRequest {
	return MoveRequest{Coordinate: Coordinate{Row: row, Col: col}}
}

// Analysis is an advised move for one side under one objective.
type Analysis struct {
	Coordinate  Coordinate `json:"coordinate"`
	Probability float64    `json:"probability"`
}
