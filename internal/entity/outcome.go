package entity

type Outcome uint8

const (
	// Undecided means the game is still in progress.
	Undecided Outcome = iota
	XWins
	OWins
	Tie
)

func outcomeFor(winner Mark) Outcome {
	switch winner {
	case X:
		return XWins
	case O:
		return OWins
	default:
		return Undecided
	}
}

func (that Outcome) IsDecided() bool {
	return that != Undecided
}

// Winner returns the winning mark, or Empty for a tie or an undecided game.
func (that Outcome) Winner() Mark {
	switch that {
	case XWins:
		return X
	case OWins:
		return O
	default:
		return Empty
	}
}

func (that Outcome) String() string {
	switch that {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Tie:
		return "Tie"
	default:
		return "undecided"
	}
}

// GameResult is how a played game ended: either a decided outcome or a quit.
type GameResult struct {
	Outcome Outcome
	Quit    bool
}
