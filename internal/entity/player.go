package entity

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MarkX = "X"
	MarkO = "O"
)

var ErrUnknownMark = errors.New("unknown player mark")

// Player is one of the two participants. The first player moves with X.
type Player uint8

const (
	PlayerFirst Player = iota + 1
	PlayerSecond
)

// ParsePlayer maps a mark ("X" or "O", any case) to a Player.
func ParsePlayer(mark string) (Player, error) {
	switch strings.ToUpper(strings.TrimSpace(mark)) {
	case MarkX:
		return PlayerFirst, nil
	case MarkO:
		return PlayerSecond, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMark, mark)
	}
}

// Opponent returns the other player.
func (that Player) Opponent() Player {
	if that == PlayerFirst {
		return PlayerSecond
	}
	return PlayerFirst
}

func (that Player) String() string {
	switch that {
	case PlayerFirst:
		return MarkX
	case PlayerSecond:
		return MarkO
	default:
		return fmt.Sprintf("Player(%d)", uint8(that))
	}
}
