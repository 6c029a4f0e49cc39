package brain

import (
	"fmt"

	"local/catanbrain/message"
	"local/catanbrain/model"
)

// Step processes exactly one dequeued message and returns the outbound
// actions it produces, per the twelve-step main loop of spec.md §4.5. It
// never panics outward: any exception inside is counted, logged, and
// swallowed, per the error taxonomy's class 4 (spec.md §7).
func (s *State) Step(msg message.Server) (responses []message.Client) {
	defer func() {
		if r := recover(); r != nil {
			s.TurnExceptionCount++
			s.Diag.LoopException(s.TurnExceptionCount, fmt.Errorf("%v", r))
			if s.TurnExceptionCount > s.Config.MaxDeniedPerTurn {
				responses = append(responses, message.Client{CType: message.EndTurn, Data: message.EndTurnData{}})
			}
		}
	}()
	return s.step(msg)
}

func (s *State) step(msg message.Server) []message.Client {
	// Step 1: record into turn_events_current, except ping and chat.
	if msg.SType != message.TimingPing {
		s.pushTurnEvent(msg)
	}

	// Step 2: pre-handlers. A non-empty return is a fully-decided response
	// for this dispatch (e.g. an ordinary-play build cancel that ends our
	// turn); skip the phase-driven steps below rather than act twice.
	if preOut := s.preHandle(msg); preOut != nil {
		s.resetTick()
		return preOut
	}

	if out := s.checkTimeouts(); out != nil {
		return out
	}

	var out []message.Client

	// Step 3.
	ourTurn := s.ourTurn()

	// Step 3b: initial placement. The server's GameState itself names what
	// we're expected to place; there is no separate BuildRequest round trip
	// the way ordinary play has one.
	if s.Game.Phase.IsInitialPlacement() && ourTurn && s.ExpectPhase == model.NonePhase && !s.WaitingForGameState {
		if want := s.chooseInitialPlacement(); want != nil {
			s.WhatWeWantToBuild = want
			s.ExpectPhase = s.Game.Phase
			s.WaitingForGameState = true
		}
	}

	// Step 4.
	if s.Game.Phase == model.Roll && s.ExpectPhase == model.NonePhase && !s.WaitingForGameState {
		if ourTurn {
			if s.shouldPlayKnightBeforeRoll() {
				out = append(out, s.playDevCard(model.Knight))
			} else {
				out = append(out, message.Client{CType: message.CRollDice, Data: message.RollDiceData{}})
				s.WaitingForGameState = true
				s.ExpectPhase = model.Play
			}
		} else {
			s.ExpectDiceResult = true
		}
	}

	// Step 5.
	if s.Game.Phase == model.WaitingForRobberOrPirate && ourTurn {
		out = append(out, s.chooseRobberOrPirate()...)
	}

	// Step 6.
	if s.Game.Phase == model.PlacingRobber && ourTurn && !s.WaitingForGameState {
		out = append(out, s.moveRobberToBestHex())
		s.WaitingForGameState = true
	}

	// Step 7.
	if s.Game.Phase == model.WaitingForDiscovery {
		out = append(out, s.pickDiscoveryResources())
	}

	// Step 8.
	if s.Game.Phase == model.WaitingForMonopoly {
		out = append(out, s.pickMonopolyResource())
	}

	// Step 9.
	if (s.Game.Phase == model.Play || s.Game.Phase == model.SpecialBuilding) &&
		!s.anyWaiting() && s.ExpectPhase == model.NonePhase {
		if !ourTurn {
			if s.Config.PauseFaster && !s.DecidedSpecialBuilding {
				out = append(out, s.maybeRequestSpecialBuilding()...)
			}
		} else {
			out = append(out, s.takeMainTurnAction()...)
		}
	}

	// Step 10.
	if s.ExpectPhase != model.NonePhase && s.expectMatchesPlacingPhase(s.Game.Phase) && s.WhatWeWantToBuild != nil {
		out = append(out, s.emitPlacement()...)
	}

	// Step 11: post-handlers.
	out = append(out, s.postHandle(msg)...)

	// Step 12: yield (nothing to do explicitly; the caller re-enters dequeue).
	if len(out) > 0 {
		s.resetTick()
	}
	return out
}

func (s *State) anyWaiting() bool {
	return s.WaitingForGameState || s.WaitingForTradeResponse || s.WaitingForTradeMsg ||
		s.WaitingForDevCard || s.WaitingForPickSpecialItem || s.WaitingForFortressAttack ||
		s.ExpectDiceResult || s.ExpectDiscard
}

func (s *State) expectMatchesPlacingPhase(p model.Phase) bool {
	if p.IsInitialPlacement() {
		return s.ExpectPhase == p
	}
	switch s.ExpectPhase {
	case model.PlacingRoad, model.PlacingShip, model.PlacingSettlement, model.PlacingCity,
		model.PlacingFreeRoad1, model.PlacingFreeRoad2:
		return s.ExpectPhase == p
	}
	return false
}
