// Package diag is the brain's diagnostics sink. Unlike the global, package-level
// log singleton it replaces, a diag.Sink is constructed explicitly per brain and
// carries its game/bot/seat identity on every line, so a sink can be discarded
// along with the brain that owns it rather than leaking process-wide state.
package diag

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Sink is a structured, per-brain diagnostics writer. The zero value is not
// usable; construct with ForBrain.
type Sink struct {
	logger zerolog.Logger
}

// ForBrain builds a Sink tagged with the identity of one bot sitting at one
// seat of one game, writing to w (os.Stderr in production, a buffer in
// tests).
func ForBrain(w io.Writer, gameID string, botID string, seat int) Sink {
	if w == nil {
		w = os.Stderr
	}
	logger := zerolog.New(w).With().
		Timestamp().
		Str("game", gameID).
		Str("bot", botID).
		Int("seat", seat).
		Logger()
	return Sink{logger: logger}
}

// Component scopes this sink to one named subsystem (e.g. "brain", "planner",
// "tracker") without constructing a whole new Sink.
func (s Sink) Component(name string) Sink {
	return Sink{logger: s.logger.With().Str("component", name).Logger()}
}

func (s Sink) Trace(msg string, args ...interface{}) { s.logger.Trace().Msgf(msg, args...) }
func (s Sink) Debug(msg string, args ...interface{}) { s.logger.Debug().Msgf(msg, args...) }
func (s Sink) Info(msg string, args ...interface{})  { s.logger.Info().Msgf(msg, args...) }
func (s Sink) Warn(msg string, args ...interface{})  { s.logger.Warn().Msgf(msg, args...) }
func (s Sink) Error(msg string, args ...interface{}) { s.logger.Error().Msgf(msg, args...) }

// Desync logs a model-desynchronization event (error taxonomy class 2):
// always logged, never fatal.
func (s Sink) Desync(seat int, believed, asserted int) {
	s.logger.Warn().
		Int("seat", seat).
		Int("believed_total", believed).
		Int("asserted_total", asserted).
		Msg("resource count mismatch, flattening hand")
}

// Deadlock logs a self-deadlock departure (error taxonomy class 3).
func (s Sink) Deadlock(reason string, ticks int) {
	s.logger.Error().Str("reason", reason).Int("ticks", ticks).Msg("leaving game: deadlock")
}

// LoopException logs a swallowed exception from inside the main loop (error
// taxonomy class 4): counted and logged, never propagated.
func (s Sink) LoopException(count int, err error) {
	s.logger.Error().Int("turn_exception_count", count).Err(err).Msg("exception in brain loop")
}
