// Package brain is the Brain Driver (C5): the state machine that consumes
// inbound server messages and emits outbound actions. One State is owned
// by exactly one goroutine (its actor loop, in actor.go); there is no shared
// mutable state between brains and no locking within one.
package brain

import (
	"local/catanbrain/board"
	"local/catanbrain/diag"
	"local/catanbrain/message"
	"local/catanbrain/model"
	"local/catanbrain/planner"
	"local/catanbrain/tracker"
)

// Timeout thresholds, per spec.md §4.5.
const (
	TradeMsgTimeout      = 10
	TradeResponseTimeout = 100
	GameStateTimeout     = 10000
	DeadlockTimeout      = 15000
)

const DefaultMaxDeniedPerTurn = 3

// Config is the brain's construction-time, enumerated configuration.
type Config struct {
	Strategy         planner.Strategy
	TradeEnabled     bool
	MaxDeniedPerTurn int
	PauseFaster      bool
}

func DefaultConfig() Config {
	return Config{Strategy: planner.Smart, TradeEnabled: true, MaxDeniedPerTurn: DefaultMaxDeniedPerTurn}
}

// State is the complete mutable state of one brain instance: the game
// model mirror, the per-seat trackers, the planner/negotiator, and every
// expect_*/waiting_for_* flag the state machine reads and writes.
type State struct {
	Seat model.Seat
	Game *model.Game

	Trackers *tracker.Set
	Planner  *planner.Planner
	Diag     diag.Sink
	Config   Config

	Alive bool

	// ExpectPhase is the single phase, if any, the brain is currently
	// waiting to transition into. At most one expect_X may be true at a
	// time, so a single field (rather than one bool per phase) enforces
	// that invariant by construction.
	ExpectPhase model.Phase

	WaitingForGameState       bool
	WaitingForTradeResponse   bool
	WaitingForTradeMsg        bool
	WaitingForDevCard         bool
	WaitingForPickSpecialItem bool
	WaitingForFortressAttack  bool
	ExpectDiceResult          bool
	ExpectDiscard             bool

	Counter int

	WhatWeWantToBuild   *planner.Candidate
	WhatWeFailedToBuild *planner.Candidate
	BuildingPlan        []planner.Candidate

	// LastInitSettlementNode remembers where we just placed an initial
	// settlement, so the matching free road/ship of the same round anchors
	// there rather than anywhere else on the board.
	LastInitSettlementNode board.NodeID

	// LastOfferGet remembers what we last asked for in an outgoing offer, so
	// a trade-response timeout knows which resource to stop expecting.
	LastOfferGet model.ResourceSet

	FailedBuilds           int
	DeniedThisTurn         int
	RejectedDevCard        model.DevCardType
	MoveRobberOnSeven      bool
	TurnExceptionCount     int
	DecidedSpecialBuilding bool

	// TurnEventsCurrent and TurnEventsPrevious form a two-slot history
	// buffer of every non-ping, non-chat message seen this turn and last,
	// kept for diagnostics; nothing in the brain reads them back.
	TurnEventsCurrent  []message.Server
	TurnEventsPrevious []message.Server
}

// New constructs a brain for one seat of one game, starting alive and with
// every wait flag clear.
func New(seat model.Seat, g *model.Game, cfg Config, d diag.Sink) *State {
	trackers := tracker.NewSet(len(g.Players))
	trackers.Rebuild(g)
	return &State{
		Seat:                   seat,
		Game:                   g,
		Trackers:               trackers,
		Planner:                planner.New(seat),
		Diag:                   d,
		Config:                 cfg,
		Alive:                  true,
		ExpectPhase:            model.NonePhase,
		RejectedDevCard:        model.NoneDevCard,
		LastInitSettlementNode: board.NoneNode,
	}
}

func (s *State) ourTurn() bool {
	return s.Game.CurrentPlayer == s.Seat
}

func (s *State) resetForNewTurn() {
	s.FailedBuilds = 0
	s.DeniedThisTurn = 0
	s.RejectedDevCard = model.NoneDevCard
	s.WhatWeFailedToBuild = nil
	s.MoveRobberOnSeven = false
	s.TurnExceptionCount = 0
	s.DecidedSpecialBuilding = false
	s.LastOfferGet = model.ResourceSet{}
	s.Planner.ResetPerTurn()
}

// resetTick records forward progress: it is called whenever a step emits an
// action and on GameState, Turn and PutPiece messages; other inbound
// messages leave the deadlock counter as it is.
func (s *State) resetTick() {
	s.Counter = 0
}

func (s *State) pushTurnEvent(m message.Server) {
	s.TurnEventsCurrent = append(s.TurnEventsCurrent, m)
}

func (s *State) rotateTurnEvents() {
	s.TurnEventsPrevious = s.TurnEventsCurrent
	s.TurnEventsCurrent = nil
}

// popBuildingPlan pops the top (most valuable) entry off the plan stack.
func (s *State) popBuildingPlan() (planner.Candidate, bool) {
	if len(s.BuildingPlan) == 0 {
		return planner.Candidate{}, false
	}
	top := s.BuildingPlan[len(s.BuildingPlan)-1]
	s.BuildingPlan = s.BuildingPlan[:len(s.BuildingPlan)-1]
	return top, true
}

func (s *State) peekBuildingPlan() *planner.Candidate {
	if len(s.BuildingPlan) == 0 {
		return nil
	}
	return &s.BuildingPlan[len(s.BuildingPlan)-1]
}
