package brain

import (
	"local/catanbrain/board"
	"local/catanbrain/message"
	"local/catanbrain/model"
	"local/catanbrain/oracle"
	"local/catanbrain/planner"
)

// shouldPlayKnightBeforeRoll reports whether we'd rather play a Knight to
// move the robber off one of our own hexes before rolling, rather than
// risk rolling a number that hurts us while it's still parked there.
func (s *State) shouldPlayKnightBeforeRoll() bool {
	if !oracle.MayPlayKnight(s.Game, s.Seat) {
		return false
	}
	robberHex := s.Game.Board.RobberHex
	for _, pc := range s.Game.Pieces {
		if pc.Owner != s.Seat {
			continue
		}
		if pc.Kind != model.Settlement && pc.Kind != model.City {
			continue
		}
		for _, h := range s.Game.Board.HexesOf(pc.Node) {
			if h == robberHex {
				return true
			}
		}
	}
	return false
}

func (s *State) playDevCard(kind model.DevCardType) message.Client {
	s.WaitingForDevCard = true
	return message.Client{CType: message.PlayDevCard, Data: message.PlayDevCardData{Kind: kind}}
}

// chooseRobberOrPirate answers the server's ask of which piece we want to
// move when both are available (sea-board scenarios); we default to the
// robber, since most boards have no pirate at all.
func (s *State) chooseRobberOrPirate() []message.Client {
	return []message.Client{{CType: message.CSimpleRequest, Data: message.SimpleRequestData{Kind: 0}}}
}

// moveRobberToBestHex picks the hex that hurts opponents the most while
// avoiding our own settlements and cities.
func (s *State) moveRobberToBestHex() message.Client {
	best := s.Game.Board.RobberHex
	bestScore := -1 << 30
	for _, h := range s.Game.Board.Hexes {
		if h.ID == s.Game.Board.RobberHex {
			continue
		}
		score := 0
		touchesUs := false
		for _, nid := range h.Nodes {
			if nid == board.NoneNode {
				continue
			}
			for _, pc := range s.Game.Pieces {
				if pc.Node != nid {
					continue
				}
				if pc.Kind != model.Settlement && pc.Kind != model.City {
					continue
				}
				if pc.Owner == s.Seat {
					touchesUs = true
					continue
				}
				weight := 1
				if pc.Kind == model.City {
					weight = 2
				}
				score += weight * oracle.DiceProbabilityForHex(s.Game, h.ID)
			}
		}
		if touchesUs {
			score -= 1000
		}
		if score > bestScore {
			bestScore = score
			best = h.ID
		}
	}
	return message.Client{CType: message.CMoveRobber, Data: message.MoveRobberData{Hex: int(best)}}
}

// pickDiscoveryResources chooses the two free resources a Year of Plenty
// card grants, favoring whatever our top building-plan target still needs.
func (s *State) pickDiscoveryResources() message.Client {
	var set model.ResourceSet
	need := 2
	if top := s.peekBuildingPlan(); top != nil {
		cost := model.StandardCost(top.Kind)
		hand := s.Game.Player(s.Seat).Hand
		for _, res := range board.AllResources {
			if need == 0 {
				break
			}
			if hand.Get(res) < cost.Get(res) {
				set.Add(res, 1)
				need--
			}
		}
	}
	for need > 0 {
		set.Add(board.Wood, 1)
		need--
	}
	s.WaitingForDevCard = false
	return message.Client{CType: message.DiscoveryPick, Data: message.DiscoveryPickData{Set: set}}
}

// pickMonopolyResource chooses the resource our building plan needs most.
func (s *State) pickMonopolyResource() message.Client {
	res := board.Wood
	if top := s.peekBuildingPlan(); top != nil {
		cost := model.StandardCost(top.Kind)
		best := -1
		for _, r := range board.AllResources {
			if cost.Get(r) > best {
				best = cost.Get(r)
				res = r
			}
		}
	}
	s.WaitingForDevCard = false
	return message.Client{CType: message.MonopolyPick, Data: message.MonopolyPickData{Resource: res}}
}

// maybeRequestSpecialBuilding asks for a special-building slot (the
// 6-player scenario) on someone else's turn, once per turn.
func (s *State) maybeRequestSpecialBuilding() []message.Client {
	s.DecidedSpecialBuilding = true
	plan := s.ensurePlan()
	if len(plan) == 0 {
		return nil
	}
	return []message.Client{{CType: message.BuildRequest, Data: message.BuildRequestData{Kind: -1}}}
}

// ensurePlan (re)builds the building-plan stack from our own tracker if it
// is currently empty, ordering it worst-first so popBuildingPlan yields the
// best candidate.
func (s *State) ensurePlan() []planner.Candidate {
	if len(s.BuildingPlan) > 0 {
		return s.BuildingPlan
	}
	candidates := planner.PlanStuff(s.Game, s.Trackers.For(s.Seat), s.Config.Strategy)
	for i := len(candidates) - 1; i >= 0; i-- {
		s.BuildingPlan = append(s.BuildingPlan, candidates[i])
	}
	return s.BuildingPlan
}

// takeMainTurnAction is the heart of step 9's on-our-turn cascade: play a
// helpful dev card, negotiate a trade, request to build, or end the turn.
func (s *State) takeMainTurnAction() []message.Client {
	plan := s.ensurePlan()
	s.dropFailedFromTop()
	plan = s.BuildingPlan
	if len(plan) == 0 {
		return []message.Client{{CType: message.EndTurn, Data: message.EndTurnData{}}}
	}

	top := s.peekBuildingPlan()
	hand := s.Game.Player(s.Seat).Hand
	cost := model.StandardCost(top.Kind)

	if !hand.CanAfford(cost) {
		if out := s.tryHelpfulDevCard(top, hand, cost); out != nil {
			return out
		}
		if s.Config.TradeEnabled && !s.Planner.DoneTrading && !s.WaitingForTradeResponse {
			if offer, ok := s.Planner.MakeOffer(hand, *top, otherSeats(s.Game, s.Seat)); ok {
				s.WaitingForTradeResponse = true
				s.LastOfferGet = offer.Get
				return []message.Client{{CType: message.OfferTrade, Data: message.OfferTradeData{Offer: offer}}}
			}
		}
		return []message.Client{{CType: message.EndTurn, Data: message.EndTurnData{}}}
	}

	if s.DeniedThisTurn >= s.Config.MaxDeniedPerTurn {
		return []message.Client{{CType: message.EndTurn, Data: message.EndTurnData{}}}
	}

	want, _ := s.popBuildingPlan()
	s.WhatWeWantToBuild = &want
	s.ExpectPhase = placingPhaseFor(want.Kind)
	s.WaitingForGameState = true
	return []message.Client{{CType: message.BuildRequest, Data: message.BuildRequestData{Kind: int(want.Kind)}}}
}

// dropFailedFromTop discards any leading building-plan entries that match
// what the server just refused us this turn, so we never re-request it
// (spec.md §4.5's "never re-request what_we_failed_to_build this turn").
func (s *State) dropFailedFromTop() {
	if s.WhatWeFailedToBuild == nil {
		return
	}
	for len(s.BuildingPlan) > 0 {
		top := s.BuildingPlan[len(s.BuildingPlan)-1]
		if !candidatesEqual(top, *s.WhatWeFailedToBuild) {
			break
		}
		s.BuildingPlan = s.BuildingPlan[:len(s.BuildingPlan)-1]
	}
}

func candidatesEqual(a, b planner.Candidate) bool {
	return a.Kind == b.Kind && a.Node == b.Node && a.Edge == b.Edge
}

func (s *State) tryHelpfulDevCard(top *planner.Candidate, hand model.ResourceSet, cost model.ResourceSet) []message.Client {
	if oracle.MayPlayRoadBuilding(s.Game, s.Seat) && (top.Kind == model.Road || top.Kind == model.Ship) {
		return []message.Client{s.playDevCard(model.RoadBuilding)}
	}
	if oracle.MayPlayYearOfPlenty(s.Game, s.Seat) {
		missing := 0
		for _, res := range board.AllResources {
			if hand.Get(res) < cost.Get(res) {
				missing += cost.Get(res) - hand.Get(res)
			}
		}
		if missing > 0 && missing <= 2 {
			return []message.Client{s.playDevCard(model.YearOfPlenty)}
		}
	}
	if oracle.MayPlayMonopoly(s.Game, s.Seat) {
		return []message.Client{s.playDevCard(model.Monopoly)}
	}
	return nil
}

// chooseInitialPlacement picks the settlement or road/ship for the current
// initial-placement phase, directly from the board rather than from the
// tracker's cached lattice, since a freshly-placed settlement hasn't yet
// had its own anchor rebuilt into the tracker's road/ship maps.
func (s *State) chooseInitialPlacement() *planner.Candidate {
	switch s.Game.Phase {
	case model.InitSettle1A, model.InitSettle2A, model.InitSettle3A:
		node := s.bestInitialSettlementNode()
		if node == board.NoneNode {
			return nil
		}
		s.LastInitSettlementNode = node
		return &planner.Candidate{Kind: model.Settlement, Node: node, Edge: board.NoneEdge}
	case model.InitRoad1B, model.InitRoad2B, model.InitRoad3B:
		edge := s.bestInitialRouteEdge()
		if edge == board.NoneEdge {
			return nil
		}
		kind := model.Road
		if !oracle.IsPotentialRoad(s.Game, s.Seat, edge) {
			kind = model.Ship
		}
		return &planner.Candidate{Kind: kind, Node: board.NoneNode, Edge: edge}
	}
	return nil
}

// bestInitialSettlementNode scores every legal node by the rarity-weighted
// dice pips of the hexes it touches and returns the best one.
func (s *State) bestInitialSettlementNode() board.NodeID {
	rarity := oracle.EstimateResourceRarity(s.Game)
	best := board.NoneNode
	bestScore := -1.0
	for _, n := range s.Game.Board.Nodes {
		if !oracle.IsPotentialSettlement(s.Game, s.Seat, n.ID) {
			continue
		}
		score := 0.0
		for _, hid := range s.Game.Board.HexesOf(n.ID) {
			h := s.Game.Board.Hex(hid)
			if h == nil || h.Resource == board.None {
				continue
			}
			score += float64(board.DicePips(h.DiceNumber)) / float64(rarity[h.Resource])
		}
		if best == board.NoneNode || score > bestScore {
			bestScore = score
			best = n.ID
		}
	}
	return best
}

// bestInitialRouteEdge picks a road (falling back to a ship, on a coastal
// edge) touching the settlement we just placed this round.
func (s *State) bestInitialRouteEdge() board.EdgeID {
	n := s.Game.Board.Node(s.LastInitSettlementNode)
	if n == nil {
		return board.NoneEdge
	}
	for _, eid := range n.Edges {
		if oracle.IsPotentialRoad(s.Game, s.Seat, eid) {
			return eid
		}
	}
	for _, eid := range n.Edges {
		if oracle.IsPotentialShip(s.Game, s.Seat, eid) {
			return eid
		}
	}
	return board.NoneEdge
}

func placingPhaseFor(kind model.PieceKind) model.Phase {
	switch kind {
	case model.Road:
		return model.PlacingRoad
	case model.Ship:
		return model.PlacingShip
	case model.Settlement:
		return model.PlacingSettlement
	case model.City:
		return model.PlacingCity
	}
	return model.NonePhase
}

func otherSeats(g *model.Game, seat model.Seat) []model.Seat {
	var out []model.Seat
	for _, p := range g.Players {
		if p.Seat != seat {
			out = append(out, p.Seat)
		}
	}
	return out
}

// emitPlacement sends the actual put-piece action for whatever we're
// expecting to place, once the server has transitioned us into that phase.
func (s *State) emitPlacement() []message.Client {
	c := s.WhatWeWantToBuild
	s.WhatWeWantToBuild = nil
	s.ExpectPhase = model.NonePhase
	return []message.Client{{CType: message.CPutPiece, Data: message.PutPieceData{
		Seat: s.Seat, Kind: c.Kind, Node: c.Node, Edge: c.Edge,
	}}}
}

// chooseVictimAmong picks the robber/pirate victim with the most buildings,
// a simple leader heuristic.
func (s *State) chooseVictimAmong(candidates []model.Seat) message.Client {
	best := model.NoneSeat
	bestScore := -1
	for _, seat := range candidates {
		score := 0
		for _, pc := range s.Game.Pieces {
			if pc.Owner != seat {
				continue
			}
			switch pc.Kind {
			case model.Settlement:
				score++
			case model.City:
				score += 2
			}
		}
		if score > bestScore {
			bestScore = score
			best = seat
		}
	}
	return message.Client{CType: message.CChoosePlayer, Data: message.ChoosePlayerData{Seat: best}}
}

// pickFreeResources answers a PickResourcesRequest, favoring whatever our
// top building-plan target still needs; any picks left over go to the
// rarest resources on the board, one each, rarest first.
func (s *State) pickFreeResources(count int) message.Client {
	var set model.ResourceSet
	need := count
	if top := s.peekBuildingPlan(); top != nil {
		cost := model.StandardCost(top.Kind)
		for _, res := range board.AllResources {
			for need > 0 && set.Get(res) < cost.Get(res) {
				set.Add(res, 1)
				need--
			}
		}
	}
	rarity := oracle.EstimateResourceRarity(s.Game)
	picked := map[board.Resource]bool{}
	for need > 0 {
		if len(picked) == len(board.AllResources) {
			picked = map[board.Resource]bool{}
		}
		rarest := board.None
		for _, res := range board.AllResources {
			if !picked[res] && (rarest == board.None || rarity[res] < rarity[rarest]) {
				rarest = res
			}
		}
		picked[rarest] = true
		set.Add(rarest, 1)
		need--
	}
	return message.Client{CType: message.PickFreeResources, Data: message.PickFreeResourcesData{Set: set}}
}

// respondToOffer answers an incoming trade offer addressed to us.
func (s *State) respondToOffer(d message.MakeOfferData) []message.Client {
	hand := s.Game.Player(s.Seat).Hand
	top := s.peekBuildingPlan()
	switch s.Planner.ConsiderOffer(hand, d.Offer, top) {
	case planner.Accept:
		return []message.Client{{CType: message.CAcceptOffer, Data: message.AcceptOfferData{Offerer: d.Offerer, Accepter: s.Seat}}}
	case planner.Reject:
		return []message.Client{{CType: message.CRejectOffer, Data: message.RejectOfferData{Seat: s.Seat}}}
	default:
		return nil
	}
}
