// Package planner is the Planner + Negotiator (C4): it turns a tracker
// snapshot into a building plan and decides how to respond to, and
// originate, trade offers. It never mutates the game model or trackers; it
// only reads them and returns plan candidates, which the brain keeps as its
// building-plan stack.
package planner

import (
	"sort"

	"local/catanbrain/board"
	"local/catanbrain/message"
	"local/catanbrain/model"
	"local/catanbrain/oracle"
	"local/catanbrain/tracker"
)

// Strategy selects a scoring profile; its behavior is a replaceable
// heuristic, per spec.md §4.4.
type Strategy int

const (
	Fast Strategy = iota
	Smart
)

// Candidate is one entry in a building plan: a concrete piece, where, and
// the score the active strategy assigned it.
type Candidate struct {
	Kind  model.PieceKind
	Node  board.NodeID
	Edge  board.EdgeID
	Score float64
}

// Weights is a named scoring profile, analogous to the teacher's per-bot
// Weights table, but keyed here by Strategy rather than by bot identity.
type Weights struct {
	SettlementBase   float64
	CityBase         float64
	RoadBase         float64
	ShipBase         float64
	ETAPenalty       float64
	ThreatBonus      float64
	DevCardBase      float64
}

var profiles = map[Strategy]Weights{
	Fast: {
		SettlementBase: 100, CityBase: 90, RoadBase: 20, ShipBase: 20,
		ETAPenalty: 5, ThreatBonus: 10, DevCardBase: 15,
	},
	Smart: {
		SettlementBase: 120, CityBase: 110, RoadBase: 15, ShipBase: 15,
		ETAPenalty: 8, ThreatBonus: 25, DevCardBase: 25,
	},
}

// Planner holds per-turn negotiator state; PlanStuff/ConsiderOffer/MakeOffer
// are its three operations exposed to the brain (C5).
type Planner struct {
	Seat model.Seat

	// IsSelling[resource] and WantsAnotherOffer[resource] are reset every
	// turn, per spec.md §4.4.
	IsSelling         map[board.Resource]bool
	WantsAnotherOffer map[board.Resource]bool

	DoneTrading bool
}

func New(seat model.Seat) *Planner {
	return &Planner{
		Seat:              seat,
		IsSelling:         map[board.Resource]bool{},
		WantsAnotherOffer: map[board.Resource]bool{},
	}
}

// ResetPerTurn clears the negotiator flags at the start of every turn.
func (p *Planner) ResetPerTurn() {
	p.IsSelling = map[board.Resource]bool{}
	p.WantsAnotherOffer = map[board.Resource]bool{}
	p.DoneTrading = false
}

// PlanStuff returns fresh building-plan candidates ordered from most to least
// valuable, using only spots the oracle currently reports as potential
// (plan entries are never speculative beyond the current board state).
// Entries come from our own tracker; PlanStuff itself may return empty.
func PlanStuff(g *model.Game, t *tracker.Tracker, strategy Strategy) []Candidate {
	w := profiles[strategy]
	var out []Candidate

	for node, spot := range t.Settlements {
		if !oracle.IsPotentialSettlement(g, t.Seat, node) {
			continue
		}
		score := w.SettlementBase - w.ETAPenalty*spot.ETA + w.ThreatBonus*float64(len(spot.ThreatenedBy))
		out = append(out, Candidate{Kind: model.Settlement, Node: node, Edge: board.NoneEdge, Score: score})
	}
	for node, spot := range t.Cities {
		if !oracle.IsPotentialCity(g, t.Seat, node) {
			continue
		}
		score := w.CityBase - w.ETAPenalty*spot.ETA
		out = append(out, Candidate{Kind: model.City, Node: node, Edge: board.NoneEdge, Score: score})
	}
	for edge := range t.Roads {
		if !oracle.IsPotentialRoad(g, t.Seat, edge) {
			continue
		}
		out = append(out, Candidate{Kind: model.Road, Node: board.NoneNode, Edge: edge, Score: w.RoadBase})
	}
	for edge := range t.Ships {
		if !oracle.IsPotentialShip(g, t.Seat, edge) {
			continue
		}
		out = append(out, Candidate{Kind: model.Ship, Node: board.NoneNode, Edge: edge, Score: w.ShipBase})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// OfferVerdict is ConsiderOffer's result.
type OfferVerdict int

const (
	Accept OfferVerdict = iota
	Reject
	Counter
	Ignore
)

// ConsiderOffer examines an incoming offer addressed to us. We accept
// offers that strictly improve our ability to afford the top of our own
// building plan, reject offers that cost us a resource we are not
// currently willing to sell, and otherwise ignore.
func (p *Planner) ConsiderOffer(hand model.ResourceSet, offer message.Offer, top *Candidate) OfferVerdict {
	if !hand.CanAfford(offer.Get) {
		return Ignore
	}
	for _, res := range board.AllResources {
		if offer.Get.Get(res) > 0 && !p.IsSelling[res] {
			return Reject
		}
	}
	if top == nil {
		return Ignore
	}
	afterTrade := hand
	afterTrade.SubCost(offer.Get)
	afterTrade.AddCost(offer.Give)
	cost := model.StandardCost(top.Kind)
	if !hand.CanAfford(cost) && afterTrade.CanAfford(cost) {
		return Accept
	}
	return Ignore
}

// MakeOffer proposes a trade toward affording the target piece, offering
// our most abundant surplus resource for whatever single resource we are
// short. Returns false if we are not short exactly one resource, or if we
// have already marked ourselves done trading this turn.
func (p *Planner) MakeOffer(hand model.ResourceSet, target Candidate, targets []model.Seat) (message.Offer, bool) {
	if p.DoneTrading {
		return message.Offer{}, false
	}
	cost := model.StandardCost(target.Kind)
	var short []board.Resource
	for _, res := range board.AllResources {
		if hand.Get(res) < cost.Get(res) {
			short = append(short, res)
		}
	}
	if len(short) != 1 {
		p.DoneTrading = true
		return message.Offer{}, false
	}
	want := short[0]

	surplus := board.None
	best := 0
	for _, res := range board.AllResources {
		if res == want {
			continue
		}
		have := hand.Get(res) - cost.Get(res)
		if have > best {
			best = have
			surplus = res
		}
	}
	if surplus == board.None {
		p.DoneTrading = true
		return message.Offer{}, false
	}

	var give, get model.ResourceSet
	give.Set(surplus, 1)
	get.Set(want, 1)
	return message.Offer{Give: give, Get: get, Targets: targets}, true
}
