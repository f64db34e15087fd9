package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PlayerID uniquely identifies a player across the system
type PlayerID string

// PlayerKind distinguishes who supplies a player's moves
type PlayerKind string

const (
	PlayerKindHuman    PlayerKind = "human"
	PlayerKindComputer PlayerKind = "computer"
)

// ComputerNamePrefix is prepended to computer display names
const ComputerNamePrefix = "Computer "

// MoveSource picks a move when the caller does not supply one
type MoveSource interface {
	ChooseMove() Move
}

// Player represents a game participant
type Player struct {
	ID       PlayerID
	name     string
	kind     PlayerKind
	score    int
	lastMove Move
	source   MoveSource
}

// NewHumanPlayer creates a player whose moves are always supplied externally
func NewHumanPlayer(id PlayerID, name string) *Player {
	return &Player{
		ID:   id,
		name: strings.TrimSpace(name),
		kind: PlayerKindHuman,
	}
}

// NewComputerPlayer creates a player that asks source for a move whenever
// none is supplied
func NewComputerPlayer(id PlayerID, name string, source MoveSource) *Player {
	return &Player{
		ID:     id,
		name:   strings.TrimSpace(name),
		kind:   PlayerKindComputer,
		source: source,
	}
}

// Kind returns whether the player is human or computer controlled
func (p *Player) Kind() PlayerKind {
	return p.kind
}

// IsComputer returns true for computer controlled players
func (p *Player) IsComputer() bool {
	return p.kind == PlayerKindComputer
}

// DisplayName returns the title-cased name, or the player ID verbatim when
// no name was given. Computer players carry the "Computer " prefix.
func (p *Player) DisplayName() string {
	base := string(p.ID)
	if p.name != "" {
		base = cases.Title(language.Und).String(p.name)
	}

	if p.kind == PlayerKindComputer && !hasPrefixFold(p.name, strings.TrimSpace(ComputerNamePrefix)) {
		return ComputerNamePrefix + base
	}
	return base
}

// Score returns the number of rounds won
func (p *Player) Score() int {
	return p.score
}

// LastMove returns the most recent move, if any
func (p *Player) LastMove() (Move, bool) {
	return p.lastMove, p.lastMove.Valid()
}

// RecordWin increments the score by one
func (p *Player) RecordWin() {
	p.score++
}

// Reset zeroes the score; the last move is kept
func (p *Player) Reset() {
	p.score = 0
}

// Play resolves input into a move and records it as the last move.
// A nil input is replaced by the move source's choice when there is one.
func (p *Player) Play(input any) (Move, error) {
	if input == nil && p.source != nil {
		input = p.source.ChooseMove()
	}

	move, err := ResolveMove(input)
	if err != nil {
		return 0, err
	}

	p.lastMove = move
	return move, nil
}

// String summarises the player's score
func (p *Player) String() string {
	suffix := "s"
	if p.score == 1 {
		suffix = ""
	}
	return fmt.Sprintf("%s has %d point%s.", p.DisplayName(), p.score, suffix)
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
