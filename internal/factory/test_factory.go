package factory

import (
	"log/slog"
	"time"

	"github.com/mcoot/rockpaperscissors/internal/dependencies/mocks"
	"github.com/mcoot/rockpaperscissors/internal/storage/memory"
	"github.com/mcoot/rockpaperscissors/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock    *mocks.MockClock
	MockRandom   *mocks.MockRandom
	MockIdentity *mocks.MockIdentity
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// A nil logger discards output.
func NewTestApp(logger *slog.Logger) *TestApp {
	if logger == nil {
		logger = testutil.NopLogger()
	}

	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockIdentity := mocks.NewMockIdentity()

	app := newWithDependencies(memory.New(), mockClock, mockRandom, mockIdentity, logger)

	return &TestApp{
		App:          app,
		MockClock:    mockClock,
		MockRandom:   mockRandom,
		MockIdentity: mockIdentity,
	}
}
