package brain

import "local/catanbrain/message"

// Actor owns a State and runs it as one goroutine consuming inbound
// messages and producing outbound ones, mirroring the teacher's Bot.Run:
// one buffered channel in, one buffered channel out, no shared state
// between actors.
type Actor struct {
	state *State

	inMsg  chan message.Server
	outMsg chan message.Client
}

// NewActor wraps state in a ready-to-run Actor.
func NewActor(state *State) *Actor {
	return &Actor{
		state:  state,
		inMsg:  make(chan message.Server, 100),
		outMsg: make(chan message.Client, 100),
	}
}

// Run drains inMsg until it is closed or the brain leaves the game
// (State.Alive turns false), dispatching each message through State.Step
// and forwarding every response onto outMsg. Call with a goroutine.
func (a *Actor) Run() {
	for msg := range a.inMsg {
		for _, r := range a.state.Step(msg) {
			a.outMsg <- r
			if !a.state.Alive {
				break
			}
		}
		if !a.state.Alive {
			break
		}
	}
	close(a.outMsg)
}

// Send enqueues an inbound message for processing. Safe to call from
// another goroutine (e.g. the transport read pump).
func (a *Actor) Send(m message.Server) {
	a.inMsg <- m
}

// Out returns the channel of outbound actions to forward to the transport.
func (a *Actor) Out() <-chan message.Client {
	return a.outMsg
}

// Done signals no further inbound messages are coming.
func (a *Actor) Done() {
	close(a.inMsg)
}
