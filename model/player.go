package model

import "local/catanbrain/board"

// Seat identifies a player's position at the table. DummyCancelSeat is a
// reserved out-of-band seat: a PutPiece carrying it is reconciled into the
// trackers as a cancellation (accepted=false) rather than as a placement.
// The trackers themselves take no seat for a cancel.
type Seat int

const DummyCancelSeat Seat = -1
const NoneSeat Seat = -2

// TradeOffer is a player's currently open trade proposal.
type TradeOffer struct {
	Give    ResourceSet
	Get     ResourceSet
	Targets []Seat // seats this offer is addressed to
}

// Player mirrors spec.md §3's Player entity: identity, hand, piece
// inventories, dev cards split into playable-now vs. new-this-turn, and the
// per-turn/per-game flags the oracle and trackers read.
type Player struct {
	Seat     Seat
	Nickname string

	Hand ResourceSet

	RoadsAvailable       int
	ShipsAvailable       int
	SettlementsAvailable int
	CitiesAvailable      int

	PlacedPieceIDs []PieceID

	DevCardsPlayableNow map[DevCardType]int
	DevCardsNewThisTurn map[DevCardType]int
	PlayedDevCardThisTurn bool

	KnightsPlayed int
	LongestRoad   bool
	LargestArmy   bool

	PortThreeForOne bool
	PortResource    map[board.Resource]bool

	OpenOffer *TradeOffer
}

func NewPlayer(seat Seat, nickname string) Player {
	return Player{
		Seat:                 seat,
		Nickname:             nickname,
		RoadsAvailable:       15,
		ShipsAvailable:       15,
		SettlementsAvailable: 5,
		CitiesAvailable:      4,
		DevCardsPlayableNow:  map[DevCardType]int{},
		DevCardsNewThisTurn:  map[DevCardType]int{},
		PortResource:         map[board.Resource]bool{},
	}
}

// VictoryPointCards returns how many playable VictoryPoint cards this player
// holds (new-this-turn VP cards still count toward score; they just can't be
// "played" since they're always-on).
func (p *Player) VictoryPointCards() int {
	return p.DevCardsPlayableNow[VictoryPoint] + p.DevCardsNewThisTurn[VictoryPoint]
}

// AvailableFor reports how many of kind remain in this player's supply.
func (p *Player) AvailableFor(kind PieceKind) int {
	switch kind {
	case Road:
		return p.RoadsAvailable
	case Ship:
		return p.ShipsAvailable
	case Settlement:
		return p.SettlementsAvailable
	case City:
		return p.CitiesAvailable
	}
	return 0
}

// resetPerTurnFlags is invoked by Game.AdvanceTurn for the player whose turn
// is beginning: rotates new-this-turn dev cards into playable-now, and
// clears the played-a-card-this-turn flag.
func (p *Player) resetPerTurnFlags() {
	for k, v := range p.DevCardsNewThisTurn {
		if v == 0 {
			continue
		}
		p.DevCardsPlayableNow[k] += v
	}
	p.DevCardsNewThisTurn = map[DevCardType]int{}
	p.PlayedDevCardThisTurn = false
}
