package bot

import (
	"github.com/mcoot/rockpaperscissors/internal/dependencies/random"
	"github.com/mcoot/rockpaperscissors/internal/model"
)

// RandomStrategy picks uniformly among all moves
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseMove returns a uniformly random move
func (s *RandomStrategy) ChooseMove() model.Move {
	moves := model.Moves()
	return moves[s.random.Intn(len(moves))]
}
