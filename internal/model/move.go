package model

import (
	"fmt"
	"strings"
)

// Move is one of the symbolic hands a player can throw
type Move int

// The zero Move is not a valid move
const (
	MoveRock Move = iota + 1
	MovePaper
	MoveScissors
)

// moveInfo holds the presentation data for a move
type moveInfo struct {
	code string
	name string
}

var moveTable = map[Move]moveInfo{
	MoveRock:     {code: "R", name: "Rock"},
	MovePaper:    {code: "P", name: "Paper"},
	MoveScissors: {code: "S", name: "Scissors"},
}

// moveOrder is the canonical listing order used for prompts and random draws
var moveOrder = []Move{MoveRock, MovePaper, MoveScissors}

// dominance maps each move to the moves it defeats.
// Larger odd-cycle variants only need extra rows here.
var dominance = map[Move][]Move{
	MoveRock:     {MoveScissors},
	MoveScissors: {MovePaper},
	MovePaper:    {MoveRock},
}

// Moves returns every valid move in canonical order
func Moves() []Move {
	out := make([]Move, len(moveOrder))
	copy(out, moveOrder)
	return out
}

// MoveCodes returns the canonical codes of every move, in canonical order
func MoveCodes() []string {
	codes := make([]string, 0, len(moveOrder))
	for _, m := range moveOrder {
		codes = append(codes, m.Code())
	}
	return codes
}

// ParseMove resolves a move code, ignoring surrounding whitespace and case
func ParseMove(code string) (Move, error) {
	sanitized := strings.ToUpper(strings.TrimSpace(code))
	for _, m := range moveOrder {
		if moveTable[m].code == sanitized {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w %q: choose from %s", ErrInvalidMoveValue, code, strings.Join(MoveCodes(), ", "))
}

// ResolveMove converts a move input into a concrete Move.
// Accepted inputs are a valid Move or a move code string.
func ResolveMove(input any) (Move, error) {
	switch v := input.(type) {
	case Move:
		if !v.Valid() {
			return 0, fmt.Errorf("%w: %d", ErrInvalidMoveValue, int(v))
		}
		return v, nil
	case string:
		return ParseMove(v)
	default:
		return 0, fmt.Errorf("%w: %T", ErrInvalidMoveType, input)
	}
}

// Valid reports whether m is one of the known moves
func (m Move) Valid() bool {
	_, ok := moveTable[m]
	return ok
}

// Code returns the canonical one-letter code for the move
func (m Move) Code() string {
	return moveTable[m].code
}

// String returns the display name of the move
func (m Move) String() string {
	if info, ok := moveTable[m]; ok {
		return info.name
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

// Equals reports whether both moves have the same identity
func (m Move) Equals(other Move) bool {
	return m == other
}

// Beats reports whether m defeats other.
// Equal moves and invalid moves beat nothing.
func (m Move) Beats(other Move) bool {
	for _, defeated := range dominance[m] {
		if defeated == other {
			return true
		}
	}
	return false
}

// Defeats returns the moves that m beats
func Defeats(m Move) []Move {
	row := dominance[m]
	out := make([]Move, len(row))
	copy(out, row)
	return out
}

// MarshalText renders the move by name
func (m Move) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMoveValue, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText accepts either a move code or a move name
func (m *Move) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	for _, candidate := range moveOrder {
		if strings.EqualFold(candidate.String(), s) {
			*m = candidate
			return nil
		}
	}
	parsed, err := ParseMove(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
