package model

// Bot strategy constants
const (
	BotStrategyRandom = "random"
)

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyRandom:
		return "Uniform random"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyRandom}
}

// IsValidBotStrategy reports whether strategy names a known bot strategy
func IsValidBotStrategy(strategy string) bool {
	for _, s := range ValidBotStrategies() {
		if s == strategy {
			return true
		}
	}
	return false
}
