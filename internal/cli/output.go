package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/rockpaperscissors/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == OutputJSON {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// Prompt asks the user for input. Prompts are suppressed in JSON mode.
func (o *Output) Prompt(msg string) {
	if o.format == OutputJSON {
		return
	}
	fmt.Fprint(o.out, msg)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case RoundView:
		o.printRound(v)
	case MatchSummary:
		o.printSummary(v)
	case []RuleView:
		o.printRules(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// PlayerView is the rendered state of a player after a round
type PlayerView struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Score    int         `json:"score"`
	LastMove *model.Move `json:"last_move,omitempty"`
}

// RoundView is the rendered result of one round
type RoundView struct {
	Round   int           `json:"round"`
	Outcome model.Outcome `json:"outcome"`
	Player1 PlayerView    `json:"player1"`
	Player2 PlayerView    `json:"player2"`
}

// MatchSummary is the rendered end state of a match
type MatchSummary struct {
	MatchID      string       `json:"match_id"`
	State        string       `json:"state"`
	WinningScore int          `json:"winning_score"`
	Rounds       int          `json:"rounds"`
	Winner       *PlayerView  `json:"winner,omitempty"`
	Players      []PlayerView `json:"players"`
}

// RuleView describes which moves a move defeats
type RuleView struct {
	Move  model.Move   `json:"move"`
	Code  string       `json:"code"`
	Beats []model.Move `json:"beats"`
}

func newPlayerView(p *model.Player) PlayerView {
	view := PlayerView{
		ID:    string(p.ID),
		Name:  p.DisplayName(),
		Score: p.Score(),
	}
	if m, ok := p.LastMove(); ok {
		view.LastMove = &m
	}
	return view
}

func newRoundView(m *model.Match, result model.RoundResult) RoundView {
	return RoundView{
		Round:   result.Round,
		Outcome: result.Outcome,
		Player1: newPlayerView(m.Player1()),
		Player2: newPlayerView(m.Player2()),
	}
}

func newMatchSummary(m *model.Match) MatchSummary {
	summary := MatchSummary{
		MatchID:      string(m.ID),
		State:        string(m.State()),
		WinningScore: m.WinningScore,
		Rounds:       m.Rounds(),
	}
	for _, p := range m.Players() {
		summary.Players = append(summary.Players, newPlayerView(p))
	}
	if w := m.Winner(); w != nil {
		view := newPlayerView(w)
		summary.Winner = &view
	}
	return summary
}

func newRuleViews() []RuleView {
	var rules []RuleView
	for _, m := range model.Moves() {
		rules = append(rules, RuleView{
			Move:  m,
			Code:  m.Code(),
			Beats: model.Defeats(m),
		})
	}
	return rules
}

func lastMoveText(p PlayerView) string {
	if p.LastMove == nil {
		return "-"
	}
	return p.LastMove.String()
}

func (o *Output) printRound(r RoundView) {
	fmt.Fprintf(o.out, "%s: %s\t%s: %s\n", r.Player1.Name, lastMoveText(r.Player1), r.Player2.Name, lastMoveText(r.Player2))
	fmt.Fprintf(o.out, "%s: %d,\t%s: %d\n", r.Player1.Name, r.Player1.Score, r.Player2.Name, r.Player2.Score)
}

func (o *Output) printSummary(s MatchSummary) {
	if s.Winner == nil {
		fmt.Fprintf(o.out, "No winner after %d rounds.\n", s.Rounds)
		return
	}
	fmt.Fprintf(o.out, "%s wins the game with %d points!\n", s.Winner.Name, s.Winner.Score)
}

func (o *Output) printRules(rules []RuleView) {
	for _, r := range rules {
		beaten := make([]string, 0, len(r.Beats))
		for _, b := range r.Beats {
			beaten = append(beaten, b.String())
		}
		fmt.Fprintf(o.out, "%s (%s) beats %s\n", r.Move, r.Code, strings.Join(beaten, ", "))
	}
}
