package brain

import (
	"local/catanbrain/board"
	"local/catanbrain/message"
	"local/catanbrain/model"
)

// preHandle applies a message's effect on the game model and on our wait
// flags, before the main loop chooses any action (step 2 of spec.md §4.5).
// It returns any response the pre-handler itself must emit (currently only
// handleCancelBuildRequest's: the ordinary-play recovery, or leaving the
// game after too many initial-placement refusals); a
// non-empty return is the complete response for this dispatch, and the
// caller skips the remaining phase-driven steps.
func (s *State) preHandle(msg message.Server) []message.Client {
	switch d := msg.Data.(type) {
	case message.GameStateData:
		s.Game.SetPhase(d.Phase)
		if s.ExpectPhase != model.NonePhase && s.ExpectPhase == d.Phase {
			s.ExpectPhase = model.NonePhase
		}
		s.WaitingForGameState = false
		s.resetTick()

	case message.TurnData:
		s.Game.AdvanceTurn(d.Seat)
		s.rotateTurnEvents()
		s.resetForNewTurn()
		s.resetTick()

	case message.FirstPlayerData:
		s.Game.FirstPlayer = d.Seat

	case message.SetTurnData:
		s.Game.SetCurrentPlayer(d.Seat)

	case message.PutPieceData:
		s.Game.ApplyPutPiece(d.Seat, d.Kind, d.Node, d.Edge)
		s.resetTick()

	case message.MovePieceData:
		s.Game.ApplyMovePiece(d.Seat, d.From, d.To)

	case message.CancelBuildRequestData:
		return s.handleCancelBuildRequest(d)

	case message.PlayerElementData:
		s.Game.ApplyPlayerElement(d.Seat, d.Field, d.Op, d.Value)

	case message.ResourceCountData:
		if mismatched := s.Game.ApplyResourceCountAssert(d.Seat, d.Total); mismatched {
			believed := 0
			if p := s.Game.Player(d.Seat); p != nil {
				believed = p.Hand.Total()
			}
			s.Diag.Desync(int(d.Seat), believed, d.Total)
		}

	case message.DevCardCountData:
		s.Game.ApplyDevCardCount(d.Total)

	case message.DevCardActionData:
		s.handleDevCardAction(d)

	case message.DiceResultData:
		s.Game.ApplyDice(d.Total)
		s.ExpectDiceResult = false
		if d.Total == 7 {
			s.MoveRobberOnSeven = true
		}

	case message.DiscardRequestData:
		s.ExpectDiscard = true

	case message.MoveRobberData:
		s.Game.ApplyRobberOrPirateHex(d.Hex)
		s.MoveRobberOnSeven = false

	case message.MakeOfferData:
		// Recorded via turn_events; responded to in postHandle once we know
		// our own hand is current.

	case message.RejectOfferData, message.AcceptOfferData, message.ClearOfferData:
		s.WaitingForTradeResponse = false

	case message.SetSpecialItemData:
		s.WaitingForPickSpecialItem = false

	case message.PirateFortressAttackResultData:
		s.WaitingForFortressAttack = false

	case message.TimingPingData:
		s.Counter++
	}
	return nil
}

// handleCancelBuildRequest implements the two failure-recovery paths of
// spec.md §4.5's recovery rules.
//
// During initial placement, the server wants us to simply retry: we
// invalidate the refused spot in the tracker and go back to waiting for the
// same phase, leaving for good only once refusals there run well past what
// a legal board should ever produce.
//
// In any other phase we record the refused piece as WhatWeFailedToBuild,
// invalidate it in every tracker (the accepted=false cancel path; the game
// model is left as it is, since our own placement is only applied once the
// server echoes it), ack the cancel so the server restores the resources it
// provisionally spent,
// clear the rest of the plan (it was built assuming the failed piece
// landed), and end our turn in this same dispatch window.
func (s *State) handleCancelBuildRequest(d message.CancelBuildRequestData) []message.Client {
	s.DeniedThisTurn++
	s.FailedBuilds++

	failed := s.WhatWeWantToBuild
	kind := d.Kind
	node := board.NoneNode
	edge := board.NoneEdge
	if failed != nil {
		kind = failed.Kind
		node = failed.Node
		edge = failed.Edge
	}
	s.Trackers.ReconcilePlacement(s.Game, kind, node, edge, false)

	s.WhatWeFailedToBuild = failed
	s.WhatWeWantToBuild = nil
	s.ExpectPhase = model.NonePhase
	s.WaitingForGameState = false

	if s.Game.Phase.IsInitialPlacement() {
		if s.FailedBuilds > 2*s.Config.MaxDeniedPerTurn {
			s.Alive = false
			return []message.Client{{CType: message.LeaveGame, Data: message.LeaveGameData{
				Reason: "too many initial placement refusals",
			}}}
		}
		return nil
	}

	s.BuildingPlan = nil
	return []message.Client{
		{CType: message.CCancelBuildRequest, Data: message.CancelBuildRequestData{Kind: kind}},
		{CType: message.EndTurn, Data: message.EndTurnData{}},
	}
}

func (s *State) handleDevCardAction(d message.DevCardActionData) {
	s.Game.ApplyDevCardAction(d.Seat, d.Kind, d.Op)
	if d.Seat == s.Seat && d.Op == model.PlayCard {
		s.WaitingForDevCard = false
	}
}

// postHandle reacts to a message after the phase-driven action steps have
// run: tracker reconciliation, trade negotiation, and resource-pick
// requests (step 11 of spec.md §4.5).
func (s *State) postHandle(msg message.Server) []message.Client {
	var out []message.Client

	switch d := msg.Data.(type) {
	case message.PutPieceData:
		accepted := d.Seat != model.DummyCancelSeat
		s.Trackers.ReconcilePlacement(s.Game, d.Kind, d.Node, d.Edge, accepted)

	case message.ChoosePlayerRequestData:
		out = append(out, s.chooseVictimAmong(d.Candidates))

	case message.PickResourcesRequestData:
		out = append(out, s.pickFreeResources(d.Count))

	case message.MakeOfferData:
		if s.Config.TradeEnabled && d.Offerer != s.Seat && offerTargetsUs(d.Offer, s.Seat) {
			out = append(out, s.respondToOffer(d)...)
		}
	}

	return out
}

func offerTargetsUs(o message.Offer, seat model.Seat) bool {
	for _, t := range o.Targets {
		if t == seat {
			return true
		}
	}
	return len(o.Targets) == 0
}
