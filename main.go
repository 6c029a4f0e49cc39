package main

import (
	"flag"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"local/catanbrain/board"
	"local/catanbrain/brain"
	"local/catanbrain/diag"
	"local/catanbrain/message"
	"local/catanbrain/model"
	"local/catanbrain/planner"
	"local/catanbrain/transport"
)

func main() {
	serverURL := flag.String("server", "ws://localhost:8080/bot", "game server websocket URL")
	gameID := flag.String("game", "", "game id to join")
	numSeats := flag.Int("seats", 4, "number of seats at the table")
	strategy := flag.String("strategy", "smart", "planner strategy: fast or smart")
	flag.Parse()

	startupLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
	startupLog.Info().Msg("catan robot brain starting")

	if *gameID == "" {
		*gameID = uuid.NewString()
	}
	botID := uuid.NewString()

	u, err := url.Parse(*serverURL)
	if err != nil {
		startupLog.Fatal().Err(err).Msg("invalid server URL")
	}
	q := u.Query()
	q.Set("game", *gameID)
	q.Set("bot", botID)
	u.RawQuery = q.Encode()

	conn, err := transport.Dial(u.String(), http.Header{})
	if err != nil {
		startupLog.Fatal().Err(err).Msg("could not connect to game server")
	}

	cfg := brain.DefaultConfig()
	if *strategy == "fast" {
		cfg.Strategy = planner.Fast
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := board.NewStandard(rng)
	g := model.NewGame(b, *numSeats, model.Options{})

	runBot(conn, g, cfg, *gameID, botID)
}

// runBot waits for the server's SitDown assignment, then runs the brain's
// actor loop until the connection drops.
func runBot(conn *transport.Conn, g *model.Game, cfg brain.Config, gameID, botID string) {
	seat := model.NoneSeat
	for seat == model.NoneSeat {
		msg, ok := <-conn.From()
		if !ok {
			return
		}
		if d, ok := msg.Data.(message.SitDownData); ok && msg.SType == message.SitDown {
			seat = d.Seat
		}
	}

	d := diag.ForBrain(os.Stderr, gameID, botID, int(seat))
	state := brain.New(seat, g, cfg, d)
	actor := brain.NewActor(state)

	go actor.Run()
	go func() {
		for m := range actor.Out() {
			conn.Send(m)
		}
		conn.Close()
	}()

	for msg := range conn.From() {
		actor.Send(msg)
	}
	actor.Done()
}
