package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
}

func newCLIRunner(t *testing.T) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "rps-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/rps")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{binaryPath: binaryPath}
}

func (r *cliRunner) run(stdin string, args ...string) (string, string, error) {
	cmd := exec.Command(r.binaryPath, args...)
	cmd.Env = cleanEnv()
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// cleanEnv strips RPS_ variables so the host environment cannot leak into a run
func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "RPS_") {
			env = append(env, kv)
		}
	}
	return env
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

func TestCLI_Rules(t *testing.T) {
	runner := newCLIRunner(t)

	out, _, err := runner.run("", "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "Rock (R) beats Scissors")
	assert.Contains(t, out, "Paper (P) beats Rock")
	assert.Contains(t, out, "Scissors (S) beats Paper")
}

func TestCLI_SimulateReachesTarget(t *testing.T) {
	runner := newCLIRunner(t)

	out, _, err := runner.run("", "simulate", "--output", "json", "--target", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)

	var summary struct {
		State  string `json:"state"`
		Winner *struct {
			Name  string `json:"name"`
			Score int    `json:"score"`
		} `json:"winner"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &summary))
	assert.Equal(t, "decided", summary.State)
	require.NotNil(t, summary.Winner)
	assert.Equal(t, 3, summary.Winner.Score)
	assert.True(t, strings.HasPrefix(summary.Winner.Name, "Computer "))
}

func TestCLI_PlayUntilInputEnds(t *testing.T) {
	runner := newCLIRunner(t)

	out, stderr, err := runner.run("r\nbanana\np\ns\n", "play", "--name", "tester", "--target", "10")
	require.NoError(t, err)

	assert.Equal(t, 5, strings.Count(out, "Enter your move (R, P, S): "))
	assert.Equal(t, 1, strings.Count(out, "Tester: Rock\t"))
	assert.Equal(t, 1, strings.Count(out, "Tester: Paper\t"))
	assert.Equal(t, 1, strings.Count(out, "Tester: Scissors\t"))
	assert.Contains(t, stderr, "Error: invalid move")
	assert.NotContains(t, out, "wins the game")
}

func TestCLI_VerboseLogsRounds(t *testing.T) {
	runner := newCLIRunner(t)

	_, stderr, err := runner.run("r\n", "play", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"round played"`)
	assert.Contains(t, stderr, `"component":"match-controller"`)
}

func TestCLI_InvalidFlags(t *testing.T) {
	runner := newCLIRunner(t)

	_, stderr, err := runner.run("", "play", "--target", "0")
	require.Error(t, err)
	assert.Contains(t, stderr, "winning score must be at least 1")
}
