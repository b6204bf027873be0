package entity

import "fmt"

type Result uint8

const (
	ResultWin Result = iota + 1
	ResultDraw
)

// Outcome is the terminal classification of a board. It is derived from the cells on every call.
type Outcome struct {
	Result Result
	Winner Player
}

func WinnerOutcome(player Player) Outcome {
	return Outcome{Result: ResultWin, Winner: player}
}

func DrawOutcome() Outcome {
	return Outcome{Result: ResultDraw}
}

func (that Outcome) IsDraw() bool {
	return that.Result == ResultDraw
}

// WinnerIs reports whether the outcome is a win for the given player.
func (that Outcome) WinnerIs(player Player) bool {
	return that.Result == ResultWin && that.Winner == player
}

func (that Outcome) String() string {
	switch that.Result {
	case ResultWin:
		return fmt.Sprintf("%s wins", that.Winner)
	case ResultDraw:
		return "draw"
	default:
		return "ongoing"
	}
}
