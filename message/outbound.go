package message

import (
	"local/catanbrain/board"
	"local/catanbrain/model"
)

type RollDiceData struct{}

type BuildRequestData struct {
	// Kind is the piece kind to request, or -1 for a special-building-phase
	// slot request, or -2 to request buying a dev card (per spec.md §6).
	Kind int
}

type BuyDevCardData struct{}

type PlayDevCardData struct {
	Kind model.DevCardType
}

type PickFreeResourcesData struct {
	Set model.ResourceSet
}

type DiscoveryPickData struct {
	Set model.ResourceSet
}

type MonopolyPickData struct {
	Resource board.Resource
}

type DiscardData struct {
	Set model.ResourceSet
}

type BankTradeData struct {
	Give model.ResourceSet
	Get  model.ResourceSet
}

type OfferTradeData struct {
	Offer Offer
}

type PickSpecialItemData struct {
	Key string
	GI  int
	PI  int
}

type EndTurnData struct{}

type LeaveGameData struct {
	Reason string
}

type ResendData struct{}

type SendTextData struct {
	Text string
}
