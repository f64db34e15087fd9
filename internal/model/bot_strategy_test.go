package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/rockpaperscissors/internal/model"
)

func TestBotStrategies(t *testing.T) {
	assert.Equal(t, []string{model.BotStrategyRandom}, model.ValidBotStrategies())
	assert.True(t, model.IsValidBotStrategy("random"))
	assert.False(t, model.IsValidBotStrategy("minimax"))
	assert.Equal(t, "Uniform random", model.BotStrategyDisplayName(model.BotStrategyRandom))
	assert.Equal(t, "minimax", model.BotStrategyDisplayName("minimax"))
}
