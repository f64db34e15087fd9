package model

import "time"

// MatchID uniquely identifies a match
type MatchID string

// DefaultWinningScore is the number of round wins needed to take a match
const DefaultWinningScore = 3

// MatchState represents the current phase of a match
type MatchState string

const (
	MatchStateInProgress MatchState = "in_progress" // No player has reached the winning score
	MatchStateDecided    MatchState = "decided"     // A winner exists
)

// Outcome is the result of a single round
type Outcome string

const (
	OutcomePlayer1 Outcome = "player1"
	OutcomePlayer2 Outcome = "player2"
	OutcomeDraw    Outcome = "draw"
)

// RoundResult describes one resolved round
type RoundResult struct {
	Round   int
	Move1   Move
	Move2   Move
	Outcome Outcome
}

// IsDraw returns true if neither player scored
func (r RoundResult) IsDraw() bool {
	return r.Outcome == OutcomeDraw
}

// Match is a first-to-N series of rounds between two players.
// A Match is not safe for concurrent use.
type Match struct {
	ID           MatchID
	WinningScore int

	player1 *Player
	player2 *Player
	rounds  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMatch creates a match between two distinct players
func NewMatch(id MatchID, player1, player2 *Player, winningScore int) (*Match, error) {
	if player1 == nil || player2 == nil {
		return nil, ErrNilPlayer
	}
	if player1 == player2 {
		return nil, ErrDuplicatePlayer
	}
	if winningScore < 1 {
		return nil, ErrInvalidWinningScore
	}

	return &Match{
		ID:           id,
		WinningScore: winningScore,
		player1:      player1,
		player2:      player2,
	}, nil
}

// Player1 returns the first player
func (m *Match) Player1() *Player {
	return m.player1
}

// Player2 returns the second player
func (m *Match) Player2() *Player {
	return m.player2
}

// Players returns both players in seat order
func (m *Match) Players() []*Player {
	return []*Player{m.player1, m.player2}
}

// Rounds returns the number of rounds played since the last reset
func (m *Match) Rounds() int {
	return m.rounds
}

// PlayRound resolves one round. Player 1 moves before player 2. A failed
// round changes nothing.
func (m *Match) PlayRound(move1, move2 any) (RoundResult, error) {
	if m.Winner() != nil {
		return RoundResult{}, ErrMatchDecided
	}

	previous := m.player1.lastMove
	resolved1, err := m.player1.Play(move1)
	if err != nil {
		return RoundResult{}, err
	}

	resolved2, err := m.player2.Play(move2)
	if err != nil {
		m.player1.lastMove = previous
		return RoundResult{}, err
	}

	m.rounds++
	result := RoundResult{
		Round:   m.rounds,
		Move1:   resolved1,
		Move2:   resolved2,
		Outcome: OutcomeDraw,
	}

	switch {
	case resolved1.Beats(resolved2):
		m.player1.RecordWin()
		result.Outcome = OutcomePlayer1
	case resolved2.Beats(resolved1):
		m.player2.RecordWin()
		result.Outcome = OutcomePlayer2
	}

	return result, nil
}

// Winner returns the player who has reached the winning score, or nil.
// Player 1 takes priority if both have.
func (m *Match) Winner() *Player {
	if m.player1.Score() >= m.WinningScore {
		return m.player1
	}
	if m.player2.Score() >= m.WinningScore {
		return m.player2
	}
	return nil
}

// State returns whether the match is still in progress
func (m *Match) State() MatchState {
	if m.Winner() != nil {
		return MatchStateDecided
	}
	return MatchStateInProgress
}

// ResetScores zeroes both scores so the same players can play again.
// Last moves are kept.
func (m *Match) ResetScores() {
	m.player1.Reset()
	m.player2.Reset()
	m.rounds = 0
}
