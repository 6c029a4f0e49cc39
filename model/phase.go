package model

// Phase is the server's authoritative game state, per spec.md §4.5. The
// brain mirrors it and never advances it unilaterally; every transition is
// driven by an inbound GameState message.
type Phase int

const (
	NonePhase Phase = iota
	InitSettle1A
	InitRoad1B
	InitSettle2A
	InitRoad2B
	InitSettle3A // scenario: three-initial-placements
	InitRoad3B   // scenario
	Roll
	Play
	PlacingRoad
	PlacingShip
	PlacingSettlement
	PlacingCity
	PlacingFreeRoad1
	PlacingFreeRoad2
	PlacingRobber
	WaitingForRobberOrPirate
	WaitingForDiscards
	WaitingForDiscovery
	WaitingForMonopoly
	WaitingForRobChoosePlayer
	SpecialBuilding
	Over
	Reset
)

var PhaseNames = map[Phase]string{
	NonePhase:                 "None",
	InitSettle1A:              "InitSettle1A",
	InitRoad1B:                "InitRoad1B",
	InitSettle2A:              "InitSettle2A",
	InitRoad2B:                "InitRoad2B",
	InitSettle3A:              "InitSettle3A",
	InitRoad3B:                "InitRoad3B",
	Roll:                      "Roll",
	Play:                      "Play",
	PlacingRoad:               "PlacingRoad",
	PlacingShip:               "PlacingShip",
	PlacingSettlement:         "PlacingSettlement",
	PlacingCity:               "PlacingCity",
	PlacingFreeRoad1:          "PlacingFreeRoad1",
	PlacingFreeRoad2:          "PlacingFreeRoad2",
	PlacingRobber:             "PlacingRobber",
	WaitingForRobberOrPirate:  "WaitingForRobberOrPirate",
	WaitingForDiscards:        "WaitingForDiscards",
	WaitingForDiscovery:       "WaitingForDiscovery",
	WaitingForMonopoly:        "WaitingForMonopoly",
	WaitingForRobChoosePlayer: "WaitingForRobChoosePlayer",
	SpecialBuilding:           "SpecialBuilding",
	Over:                      "Over",
	Reset:                     "Reset",
}

func (p Phase) String() string { return PhaseNames[p] }

func (p Phase) IsInitialPlacement() bool {
	switch p {
	case InitSettle1A, InitRoad1B, InitSettle2A, InitRoad2B, InitSettle3A, InitRoad3B:
		return true
	}
	return false
}
