package model_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/rockpaperscissors/internal/model"
)

// queueSource returns queued moves in order, then the zero Move
type queueSource struct {
	moves []model.Move
	calls int
}

func (q *queueSource) ChooseMove() model.Move {
	q.calls++
	if len(q.moves) == 0 {
		return 0
	}
	m := q.moves[0]
	q.moves = q.moves[1:]
	return m
}

type PlayerSuite struct {
	suite.Suite
}

func TestPlayerSuite(t *testing.T) {
	suite.Run(t, new(PlayerSuite))
}

func (s *PlayerSuite) TestDisplayName_TitleCasesSuppliedName() {
	s.Equal("Alice", model.NewHumanPlayer("p1", "alice").DisplayName())
	s.Equal("Alice Cooper", model.NewHumanPlayer("p1", "ALICE cooper").DisplayName())
	s.Equal("Bob", model.NewHumanPlayer("p1", "  bob  ").DisplayName())
}

func (s *PlayerSuite) TestDisplayName_FallsBackToIDVerbatim() {
	s.Equal("abc-DEF-123", model.NewHumanPlayer("abc-DEF-123", "").DisplayName())
	s.Equal("abc-DEF-123", model.NewHumanPlayer("abc-DEF-123", "   ").DisplayName())
}

func (s *PlayerSuite) TestDisplayName_FallbackIsUniquePerPlayer() {
	a := model.NewHumanPlayer("id-1", "")
	b := model.NewHumanPlayer("id-2", "")
	s.NotEqual(a.DisplayName(), b.DisplayName())
}

func (s *PlayerSuite) TestDisplayName_ComputerPrefix() {
	s.Equal("Computer id-7", model.NewComputerPlayer("id-7", "", nil).DisplayName())
	s.Equal("Computer Deep Blue", model.NewComputerPlayer("id-7", "deep blue", nil).DisplayName())
	s.Equal("Computer Hal", model.NewComputerPlayer("id-7", "COMPUTER hal", nil).DisplayName())
	s.Equal("Computer", model.NewComputerPlayer("id-7", "computer", nil).DisplayName())
}

func (s *PlayerSuite) TestKind() {
	human := model.NewHumanPlayer("p1", "alice")
	computer := model.NewComputerPlayer("p2", "", &queueSource{})

	s.Equal(model.PlayerKindHuman, human.Kind())
	s.False(human.IsComputer())
	s.Equal(model.PlayerKindComputer, computer.Kind())
	s.True(computer.IsComputer())
}

func (s *PlayerSuite) TestRecordWinAndReset() {
	p := model.NewHumanPlayer("p1", "alice")
	s.Equal(0, p.Score())

	for i := 1; i <= 5; i++ {
		p.RecordWin()
		s.Equal(i, p.Score())
	}

	_, err := p.Play("r")
	s.Require().NoError(err)

	p.Reset()
	s.Equal(0, p.Score())

	last, ok := p.LastMove()
	s.True(ok, "reset keeps the last move")
	s.Equal(model.MoveRock, last)
}

func (s *PlayerSuite) TestLastMoveAbsentUntilFirstPlay() {
	p := model.NewHumanPlayer("p1", "alice")
	_, ok := p.LastMove()
	s.False(ok)
}

func (s *PlayerSuite) TestPlay_HumanAcceptedForms() {
	p := model.NewHumanPlayer("p1", "alice")

	m, err := p.Play(model.MovePaper)
	s.Require().NoError(err)
	s.Equal(model.MovePaper, m)

	m, err = p.Play(" s ")
	s.Require().NoError(err)
	s.Equal(model.MoveScissors, m)

	last, ok := p.LastMove()
	s.True(ok)
	s.Equal(model.MoveScissors, last)
}

func (s *PlayerSuite) TestPlay_HumanRequiresInput() {
	p := model.NewHumanPlayer("p1", "alice")
	_, err := p.Play(nil)
	s.ErrorIs(err, model.ErrInvalidMoveType)

	_, ok := p.LastMove()
	s.False(ok)
}

func (s *PlayerSuite) TestPlay_InvalidInputLeavesStateUnchanged() {
	p := model.NewHumanPlayer("p1", "alice")
	_, err := p.Play("r")
	s.Require().NoError(err)
	p.RecordWin()

	_, err = p.Play("x")
	s.ErrorIs(err, model.ErrInvalidMoveValue)

	_, err = p.Play(3.14)
	s.ErrorIs(err, model.ErrInvalidMoveType)

	last, _ := p.LastMove()
	s.Equal(model.MoveRock, last)
	s.Equal(1, p.Score())
}

func (s *PlayerSuite) TestPlay_ComputerUsesSourceOnlyWhenInputAbsent() {
	source := &queueSource{moves: []model.Move{model.MoveScissors}}
	p := model.NewComputerPlayer("p1", "", source)

	m, err := p.Play(nil)
	s.Require().NoError(err)
	s.Equal(model.MoveScissors, m)
	s.Equal(1, source.calls)

	m, err = p.Play("p")
	s.Require().NoError(err)
	s.Equal(model.MovePaper, m)
	s.Equal(1, source.calls, "supplied input bypasses the source")
}

func (s *PlayerSuite) TestPlay_ComputerSourceErrorPropagates() {
	p := model.NewComputerPlayer("p1", "", &queueSource{})
	_, err := p.Play(nil)
	s.ErrorIs(err, model.ErrInvalidMoveValue)
}

func (s *PlayerSuite) TestPlay_ComputerWithoutSourceBehavesLikeHuman() {
	p := model.NewComputerPlayer("p1", "", nil)
	_, err := p.Play(nil)
	s.ErrorIs(err, model.ErrInvalidMoveType)
}

func (s *PlayerSuite) TestString() {
	p := model.NewHumanPlayer("p1", "alice")
	s.Equal("Alice has 0 points.", p.String())
	p.RecordWin()
	s.Equal("Alice has 1 point.", p.String())
	p.RecordWin()
	s.Equal("Alice has 2 points.", p.String())
}
