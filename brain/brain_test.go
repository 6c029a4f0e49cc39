package brain

import (
	"bytes"
	"math/rand"
	"testing"

	"local/catanbrain/board"
	"local/catanbrain/diag"
	"local/catanbrain/message"
	"local/catanbrain/model"
	"local/catanbrain/planner"

	"github.com/stretchr/testify/require"
)

func newTestBrain(t *testing.T) *State {
	t.Helper()
	b := board.NewStandard(rand.New(rand.NewSource(7)))
	g := model.NewGame(b, 4, model.Options{})
	g.SetCurrentPlayer(0)
	d := diag.ForBrain(&bytes.Buffer{}, "game1", "bot1", 0)
	return New(0, g, DefaultConfig(), d)
}

func TestAtMostOneExpectPlacingAtATime(t *testing.T) {
	s := newTestBrain(t)
	s.ExpectPhase = model.PlacingRoad
	// A single field structurally cannot hold two phases at once.
	require.NotEqual(t, model.PlacingSettlement, s.ExpectPhase)
}

func TestPutPieceThenCancelUndoIsIdempotent(t *testing.T) {
	s := newTestBrain(t)
	before := len(s.Game.Pieces)
	id := s.Game.ApplyPutPiece(0, model.Road, board.NoneNode, 0)
	s.Game.UndoPutPiece(id)
	require.Equal(t, before+1, len(s.Game.Pieces)) // arena slot kept, marked None
	require.Equal(t, model.NoneKind, s.Game.Pieces[id].Kind)
}

func TestRepeatedSetElementIsNoOp(t *testing.T) {
	s := newTestBrain(t)
	s.Game.ApplyPlayerElement(0, model.FieldClay, model.SET, 3)
	first := s.Game.Player(0).Hand
	s.Game.ApplyPlayerElement(0, model.FieldClay, model.SET, 3)
	require.Equal(t, first, s.Game.Player(0).Hand)
}

func TestTurnResetsPerTurnFlags(t *testing.T) {
	s := newTestBrain(t)
	s.DeniedThisTurn = 2
	s.FailedBuilds = 1
	s.TurnExceptionCount = 4
	s.Step(message.Server{SType: message.Turn, Data: message.TurnData{Seat: 0}})
	require.Equal(t, 0, s.DeniedThisTurn)
	require.Equal(t, 0, s.FailedBuilds)
	require.Equal(t, 0, s.TurnExceptionCount)
}

func TestTimingPingOnlyBrainLeavesAfterDeadlockTimeout(t *testing.T) {
	s := newTestBrain(t)
	var last []message.Client
	for i := 0; i < DeadlockTimeout+1; i++ {
		last = s.Step(message.Server{SType: message.TimingPing, Data: message.TimingPingData{}})
		if len(last) > 0 {
			break
		}
	}
	require.Len(t, last, 1)
	require.Equal(t, message.LeaveGame, last[0].CType)
	require.False(t, s.Alive)
}

func TestMaxDeniedBuildingStopsFurtherBuildRequests(t *testing.T) {
	s := newTestBrain(t)
	s.Game.SetPhase(model.Play)
	s.Game.Player(0).Hand = model.ResourceSet{Clay: 10, Ore: 10, Sheep: 10, Wheat: 10, Wood: 10}
	for i := 0; i < s.Config.MaxDeniedPerTurn; i++ {
		s.Step(message.Server{SType: message.CancelBuildRequest, Data: message.CancelBuildRequestData{Kind: model.Road}})
	}
	require.Equal(t, s.Config.MaxDeniedPerTurn, s.DeniedThisTurn)
	out := s.takeMainTurnAction()
	require.Len(t, out, 1)
	require.Equal(t, message.EndTurn, out[0].CType)
}

func TestNeverRetriesFailedBuildSameTurn(t *testing.T) {
	s := newTestBrain(t)
	s.Game.SetPhase(model.Play)
	want := planner.Candidate{Kind: model.Settlement, Node: 5, Edge: board.NoneEdge}
	s.WhatWeWantToBuild = &want
	s.Step(message.Server{SType: message.CancelBuildRequest, Data: message.CancelBuildRequestData{Kind: model.Settlement}})
	require.NotNil(t, s.WhatWeFailedToBuild)
	require.Nil(t, s.WhatWeWantToBuild)
	require.Equal(t, want.Node, s.WhatWeFailedToBuild.Node)
}
