// Package message defines the tagged-variant envelopes the brain exchanges
// with the server: Server for inbound notifications and requests, Client
// for outbound actions. Each envelope carries an integer kind plus an
// untyped Data payload; UnmarshalServer/UnmarshalClient do the second-pass
// unmarshal into the concrete payload type once the kind is known, mirroring
// how the wire protocol this brain talks is actually framed.
package message

import (
	"encoding/json"
	"fmt"
)

// SType enumerates every inbound message the brain must handle.
type SType int

const (
	STypeNone SType = iota
	SitDown
	RobotDismiss
	Reset
	GameState
	Turn
	FirstPlayer
	SetTurn
	PutPiece
	MovePiece
	CancelBuildRequest
	PlayerElement
	ResourceCount
	DevCardCount
	DevCardAction
	SetPlayedDevCard
	DiceResult
	DiscardRequest
	MoveRobber
	ChoosePlayerRequest
	ChoosePlayer
	PickResourcesRequest
	MakeOffer
	ClearOffer
	AcceptOffer
	RejectOffer
	SimpleRequest
	SimpleAction
	SetSpecialItem
	PirateFortressAttackResult
	TimingPing
)

var STypeNames = map[SType]string{
	STypeNone:                  "STypeNone",
	SitDown:                    "SitDown",
	RobotDismiss:               "RobotDismiss",
	Reset:                      "Reset",
	GameState:                  "GameState",
	Turn:                       "Turn",
	FirstPlayer:                "FirstPlayer",
	SetTurn:                    "SetTurn",
	PutPiece:                   "PutPiece",
	MovePiece:                  "MovePiece",
	CancelBuildRequest:         "CancelBuildRequest",
	PlayerElement:              "PlayerElement",
	ResourceCount:              "ResourceCount",
	DevCardCount:               "DevCardCount",
	DevCardAction:              "DevCardAction",
	SetPlayedDevCard:           "SetPlayedDevCard",
	DiceResult:                 "DiceResult",
	DiscardRequest:             "DiscardRequest",
	MoveRobber:                 "MoveRobber",
	ChoosePlayerRequest:        "ChoosePlayerRequest",
	ChoosePlayer:               "ChoosePlayer",
	PickResourcesRequest:       "PickResourcesRequest",
	MakeOffer:                  "MakeOffer",
	ClearOffer:                 "ClearOffer",
	AcceptOffer:                "AcceptOffer",
	RejectOffer:                "RejectOffer",
	SimpleRequest:              "SimpleRequest",
	SimpleAction:               "SimpleAction",
	SetSpecialItem:             "SetSpecialItem",
	PirateFortressAttackResult: "PirateFortressAttackResult",
	TimingPing:                 "TimingPing",
}

func (t SType) String() string { return STypeNames[t] }

// CType enumerates every outbound action the brain may emit.
type CType int

const (
	CTypeNone CType = iota
	CPutPiece
	CRollDice
	BuildRequest
	BuyDevCard
	PlayDevCard
	PickFreeResources
	DiscoveryPick
	MonopolyPick
	Discard
	CMoveRobber
	CChoosePlayer
	BankTrade
	OfferTrade
	CAcceptOffer
	CRejectOffer
	CClearOffer
	PickSpecialItem
	CSimpleRequest
	EndTurn
	LeaveGame
	Resend
	SendText
	CCancelBuildRequest
)

var CTypeNames = map[CType]string{
	CTypeNone:           "CTypeNone",
	CPutPiece:           "PutPiece",
	CRollDice:           "RollDice",
	BuildRequest:        "BuildRequest",
	BuyDevCard:          "BuyDevCard",
	PlayDevCard:         "PlayDevCard",
	PickFreeResources:   "PickFreeResources",
	DiscoveryPick:       "DiscoveryPick",
	MonopolyPick:        "MonopolyPick",
	Discard:             "Discard",
	CMoveRobber:         "MoveRobber",
	CChoosePlayer:       "ChoosePlayer",
	BankTrade:           "BankTrade",
	OfferTrade:          "OfferTrade",
	CAcceptOffer:        "AcceptOffer",
	CRejectOffer:        "RejectOffer",
	CClearOffer:         "ClearOffer",
	PickSpecialItem:     "PickSpecialItem",
	CSimpleRequest:      "SimpleRequest",
	EndTurn:             "EndTurn",
	LeaveGame:           "LeaveGame",
	Resend:              "Resend",
	SendText:            "SendText",
	CCancelBuildRequest: "CancelBuildRequest",
}

func (t CType) String() string { return CTypeNames[t] }

// Server is an inbound envelope from the game server.
type Server struct {
	SType SType
	Data  interface{}
}

// Client is an outbound envelope the brain sends to the game server.
type Client struct {
	CType CType
	Data  interface{}
}

func UnmarshalServer(bytes []byte) (Server, error) {
	var s Server
	if err := json.Unmarshal(bytes, &s); err != nil {
		return Server{}, err
	}
	moreBytes, err := json.Marshal(s.Data)
	if err != nil {
		return Server{}, err
	}

	var target interface{}
	switch s.SType {
	case SitDown:
		target = &SitDownData{}
	case RobotDismiss:
		target = &RobotDismissData{}
	case Reset:
		target = &ResetData{}
	case GameState:
		target = &GameStateData{}
	case Turn:
		target = &TurnData{}
	case FirstPlayer:
		target = &FirstPlayerData{}
	case SetTurn:
		target = &SetTurnData{}
	case PutPiece:
		target = &PutPieceData{}
	case MovePiece:
		target = &MovePieceData{}
	case CancelBuildRequest:
		target = &CancelBuildRequestData{}
	case PlayerElement:
		target = &PlayerElementData{}
	case ResourceCount:
		target = &ResourceCountData{}
	case DevCardCount:
		target = &DevCardCountData{}
	case DevCardAction:
		target = &DevCardActionData{}
	case SetPlayedDevCard:
		target = &SetPlayedDevCardData{}
	case DiceResult:
		target = &DiceResultData{}
	case DiscardRequest:
		target = &DiscardRequestData{}
	case MoveRobber:
		target = &MoveRobberData{}
	case ChoosePlayerRequest:
		target = &ChoosePlayerRequestData{}
	case ChoosePlayer:
		target = &ChoosePlayerData{}
	case PickResourcesRequest:
		target = &PickResourcesRequestData{}
	case MakeOffer:
		target = &MakeOfferData{}
	case ClearOffer:
		target = &ClearOfferData{}
	case AcceptOffer:
		target = &AcceptOfferData{}
	case RejectOffer:
		target = &RejectOfferData{}
	case SimpleRequest:
		target = &SimpleRequestData{}
	case SimpleAction:
		target = &SimpleActionData{}
	case SetSpecialItem:
		target = &SetSpecialItemData{}
	case PirateFortressAttackResult:
		target = &PirateFortressAttackResultData{}
	case TimingPing:
		target = &TimingPingData{}
	default:
		return Server{}, fmt.Errorf("unknown SType: %d", s.SType)
	}
	if err := json.Unmarshal(moreBytes, target); err != nil {
		return Server{}, err
	}
	s.Data = derefData(target)
	return s, nil
}

func UnmarshalClient(bytes []byte) (Client, error) {
	var c Client
	if err := json.Unmarshal(bytes, &c); err != nil {
		return Client{}, err
	}
	moreBytes, err := json.Marshal(c.Data)
	if err != nil {
		return Client{}, err
	}

	var target interface{}
	switch c.CType {
	case CPutPiece:
		target = &PutPieceData{}
	case CRollDice:
		target = &RollDiceData{}
	case BuildRequest:
		target = &BuildRequestData{}
	case BuyDevCard:
		target = &BuyDevCardData{}
	case PlayDevCard:
		target = &PlayDevCardData{}
	case PickFreeResources:
		target = &PickFreeResourcesData{}
	case DiscoveryPick:
		target = &DiscoveryPickData{}
	case MonopolyPick:
		target = &MonopolyPickData{}
	case Discard:
		target = &DiscardData{}
	case CMoveRobber:
		target = &MoveRobberData{}
	case CChoosePlayer:
		target = &ChoosePlayerData{}
	case BankTrade:
		target = &BankTradeData{}
	case OfferTrade:
		target = &OfferTradeData{}
	case CAcceptOffer:
		target = &AcceptOfferData{}
	case CRejectOffer:
		target = &RejectOfferData{}
	case CClearOffer:
		target = &ClearOfferData{}
	case PickSpecialItem:
		target = &PickSpecialItemData{}
	case CSimpleRequest:
		target = &SimpleRequestData{}
	case EndTurn:
		target = &EndTurnData{}
	case LeaveGame:
		target = &LeaveGameData{}
	case Resend:
		target = &ResendData{}
	case SendText:
		target = &SendTextData{}
	case CCancelBuildRequest:
		target = &CancelBuildRequestData{}
	default:
		return Client{}, fmt.Errorf("unknown CType: %d", c.CType)
	}
	if err := json.Unmarshal(moreBytes, target); err != nil {
		return Client{}, err
	}
	c.Data = derefData(target)
	return c, nil
}

// derefData unwraps the pointer UnmarshalServer/UnmarshalClient populate
// into a plain value, so callers can type-switch on the value type exactly
// as they would a JSON-decoded struct literal.
func derefData(target interface{}) interface{} {
	switch v := target.(type) {
	case *SitDownData:
		return *v
	case *RobotDismissData:
		return *v
	case *ResetData:
		return *v
	case *GameStateData:
		return *v
	case *TurnData:
		return *v
	case *FirstPlayerData:
		return *v
	case *SetTurnData:
		return *v
	case *PutPieceData:
		return *v
	case *MovePieceData:
		return *v
	case *CancelBuildRequestData:
		return *v
	case *PlayerElementData:
		return *v
	case *ResourceCountData:
		return *v
	case *DevCardCountData:
		return *v
	case *DevCardActionData:
		return *v
	case *SetPlayedDevCardData:
		return *v
	case *DiceResultData:
		return *v
	case *DiscardRequestData:
		return *v
	case *MoveRobberData:
		return *v
	case *ChoosePlayerRequestData:
		return *v
	case *ChoosePlayerData:
		return *v
	case *PickResourcesRequestData:
		return *v
	case *MakeOfferData:
		return *v
	case *ClearOfferData:
		return *v
	case *AcceptOfferData:
		return *v
	case *RejectOfferData:
		return *v
	case *SimpleRequestData:
		return *v
	case *SimpleActionData:
		return *v
	case *SetSpecialItemData:
		return *v
	case *PirateFortressAttackResultData:
		return *v
	case *TimingPingData:
		return *v
	case *BuildRequestData:
		return *v
	case *BuyDevCardData:
		return *v
	case *PlayDevCardData:
		return *v
	case *PickFreeResourcesData:
		return *v
	case *DiscoveryPickData:
		return *v
	case *MonopolyPickData:
		return *v
	case *DiscardData:
		return *v
	case *BankTradeData:
		return *v
	case *OfferTradeData:
		return *v
	case *PickSpecialItemData:
		return *v
	case *EndTurnData:
		return *v
	case *LeaveGameData:
		return *v
	case *ResendData:
		return *v
	case *SendTextData:
		return *v
	case *RollDiceData:
		return *v
	default:
		return target
	}
}
