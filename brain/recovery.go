package brain

import (
	"fmt"

	"local/catanbrain/board"
	"local/catanbrain/message"
)

// checkTimeouts enforces the tick-counter thresholds of spec.md §4.5: we
// give up waiting and declare ourselves deadlocked well before a human
// opponent would, and in smaller steps we resend a stalled GameState
// request or give up on a stalled trade negotiation.
func (s *State) checkTimeouts() []message.Client {
	if s.Counter >= DeadlockTimeout {
		s.Diag.Deadlock("no forward progress", s.Counter)
		s.Alive = false
		return []message.Client{{CType: message.LeaveGame, Data: message.LeaveGameData{
			Reason: fmt.Sprintf("counter %d", DeadlockTimeout),
		}}}
	}

	if s.WaitingForGameState && s.Counter >= GameStateTimeout {
		return []message.Client{{CType: message.Resend, Data: message.ResendData{}}}
	}

	if s.WaitingForTradeResponse && s.Counter >= TradeResponseTimeout {
		s.WaitingForTradeResponse = false
		s.Planner.DoneTrading = true
		for _, res := range board.AllResources {
			if s.LastOfferGet.Get(res) > 0 {
				s.Planner.WantsAnotherOffer[res] = false
			}
		}
		return []message.Client{{CType: message.CClearOffer, Data: message.ClearOfferData{Seat: s.Seat}}}
	}

	if s.WaitingForTradeMsg && s.Counter >= TradeMsgTimeout {
		s.WaitingForTradeMsg = false
	}

	return nil
}
