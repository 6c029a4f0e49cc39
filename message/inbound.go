package message

import (
	"local/catanbrain/board"
	"local/catanbrain/model"
)

type SitDownData struct {
	Seat model.Seat
	Name string
}

type RobotDismissData struct{}

type ResetData struct{}

type GameStateData struct {
	Phase model.Phase
}

type TurnData struct {
	Seat model.Seat
}

type FirstPlayerData struct {
	Seat model.Seat
}

type SetTurnData struct {
	Seat model.Seat
}

type PutPieceData struct {
	Seat model.Seat
	Kind model.PieceKind
	Node board.NodeID
	Edge board.EdgeID
}

type MovePieceData struct {
	Seat model.Seat
	Kind model.PieceKind
	From board.EdgeID
	To   board.EdgeID
}

type CancelBuildRequestData struct {
	Kind model.PieceKind
}

type PlayerElementData struct {
	Seat  model.Seat
	Field model.ElementField
	Op    model.ElementOp
	Value int
}

type ResourceCountData struct {
	Seat  model.Seat
	Total int
}

type DevCardCountData struct {
	Total int
}

type DevCardActionData struct {
	Seat model.Seat
	Kind model.DevCardType
	Op   model.DevCardOp
}

type SetPlayedDevCardData struct {
	Seat   model.Seat
	Played bool
}

type DiceResultData struct {
	Total int
}

type DiscardRequestData struct {
	Count int
}

// MoveRobberData carries a sign-encoded hex: a negative value moves the
// pirate (see model.Game.ApplyRobberOrPirateHex), a non-negative value moves
// the robber.
type MoveRobberData struct {
	Hex int
}

type ChoosePlayerRequestData struct {
	Candidates []model.Seat
}

type ChoosePlayerData struct {
	Seat model.Seat
}

type PickResourcesRequestData struct {
	Count int
}

type MakeOfferData struct {
	Offerer model.Seat
	Offer   Offer
}

type ClearOfferData struct {
	Seat model.Seat // model.NoneSeat clears every outstanding offer
}

type AcceptOfferData struct {
	Offerer  model.Seat
	Accepter model.Seat
}

type RejectOfferData struct {
	Seat model.Seat
}

type SimpleRequestData struct {
	Kind int
	P1   int
	P2   int
}

type SimpleActionData struct {
	Kind int
	P1   int
	P2   int
}

type SetSpecialItemData struct {
	Key string
	GI  int
	PI  int
}

type PirateFortressAttackResultData struct {
	Seat    model.Seat
	Won     bool
	Strength int
}

type TimingPingData struct{}

// Offer is a trade proposal: give set, get set, and the seats it is
// addressed to.
type Offer struct {
	Give    model.ResourceSet
	Get     model.ResourceSet
	Targets []model.Seat
}
