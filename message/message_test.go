package message

import (
	"encoding/json"
	"testing"

	"local/catanbrain/board"
	"local/catanbrain/model"

	"github.com/stretchr/testify/require"
)

func TestUnmarshalServerRoundTripsDiceResult(t *testing.T) {
	orig := Server{SType: DiceResult, Data: DiceResultData{Total: 9}}
	bytes, err := json.Marshal(orig)
	require.NoError(t, err)

	got, err := UnmarshalServer(bytes)
	require.NoError(t, err)
	require.Equal(t, DiceResult, got.SType)
	require.Equal(t, DiceResultData{Total: 9}, got.Data)
}

func TestUnmarshalServerRoundTripsPutPieceWithBoardCoords(t *testing.T) {
	orig := Server{
		SType: PutPiece,
		Data: PutPieceData{
			Seat: 2,
			Kind: model.Settlement,
			Node: board.NodeID(7),
			Edge: board.NoneEdge,
		},
	}
	bytes, err := json.Marshal(orig)
	require.NoError(t, err)

	got, err := UnmarshalServer(bytes)
	require.NoError(t, err)
	data, ok := got.Data.(PutPieceData)
	require.True(t, ok)
	require.Equal(t, model.Seat(2), data.Seat)
	require.Equal(t, board.NodeID(7), data.Node)
}

func TestUnmarshalServerUnknownSTypeErrors(t *testing.T) {
	_, err := UnmarshalServer([]byte(`{"SType": 9999}`))
	require.Error(t, err)
}

func TestUnmarshalClientRoundTripsOfferTrade(t *testing.T) {
	orig := Client{
		CType: OfferTrade,
		Data: OfferTradeData{Offer: Offer{
			Give:    model.ResourceSet{Wood: 1},
			Get:     model.ResourceSet{Ore: 1},
			Targets: []model.Seat{1, 2},
		}},
	}
	bytes, err := json.Marshal(orig)
	require.NoError(t, err)

	got, err := UnmarshalClient(bytes)
	require.NoError(t, err)
	data, ok := got.Data.(OfferTradeData)
	require.True(t, ok)
	require.Equal(t, 1, data.Offer.Give.Wood)
	require.ElementsMatch(t, []model.Seat{1, 2}, data.Offer.Targets)
}

func TestUnmarshalClientUnknownCTypeErrors(t *testing.T) {
	_, err := UnmarshalClient([]byte(`{"CType": 9999}`))
	require.Error(t, err)
}
