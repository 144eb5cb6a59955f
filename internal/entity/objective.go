package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

// Objective is the policy an automated player optimizes for.
type Objective uint8

const (
	MaximizeWin Objective = iota
	MaximizeLoss
	MaximizeTie
	// AvoidTie values a win and a loss alike and a tie as nothing.
	AvoidTie
)

func (that Objective) Valid() bool {
	return that <= AvoidTie
}

func (that Objective) String() string {
	switch that {
	case MaximizeWin:
		return "win"
	case MaximizeLoss:
		return "lose"
	case MaximizeTie:
		return "tie"
	case AvoidTie:
		return "notie"
	default:
		return fmt.Sprintf("objective(%d)", uint8(that))
	}
}

func ParseObjective(s string) (Objective, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "win":
		return MaximizeWin, nil
	case "l", "lose", "loss":
		return MaximizeLoss, nil
	case "t", "tie":
		return MaximizeTie, nil
	case "n", "notie", "no-tie", "avoid-tie":
		return AvoidTie, nil
	default:
		return MaximizeWin, fmt.Errorf("%w: %q", apperror.ErrUnknownObjective, s)
	}
}
