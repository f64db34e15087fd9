package bot

import (
	"github.com/mcoot/rockpaperscissors/internal/dependencies/random"
	"github.com/mcoot/rockpaperscissors/internal/model"
)

// Strategy defines how a computer player chooses a move.
// Every Strategy satisfies model.MoveSource.
type Strategy interface {
	// ChooseMove selects the next move to throw
	ChooseMove() model.Move
}

var _ model.MoveSource = Strategy(nil)

// DefaultStrategies returns the registry of every built-in strategy keyed by name
func DefaultStrategies(rnd random.Random) map[string]Strategy {
	return map[string]Strategy{
		model.BotStrategyRandom: NewRandomStrategy(rnd),
	}
}
