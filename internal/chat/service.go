// Package chat orchestrates a single chat request: prompt composition,
// provider streaming and the simulation fallback.
package chat

import (
	"context"
	"strings"

	"medichat-backend/internal/llm"
	"medichat-backend/internal/models"
	"medichat-backend/internal/prompt"
	"medichat-backend/internal/simulation"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ActionStartMetronome asks the client UI to start its CPR metronome.
const ActionStartMetronome = "start_metronome"

// emergencyKeywords is kept for future keyword-based model routing;
// SelectModel does not consult it yet.
var emergencyKeywords = []string{"emergency", "help", "unconscious", "not breathing", "cpr", "bleeding", "ambulance"}

// ProfileSource looks up a user's medical profile for prompt injection.
type ProfileSource interface {
	GetHistoryByUserID(userID int64) (models.MedicalHistory, error)
}

// Service drives chat requests. The provider is nil when no credential was
// configured; every request then takes the simulation path without ever
// touching the network.
type Service struct {
	provider llm.Provider
	profiles ProfileSource
	model    string
	log      zerolog.Logger
}

func NewService(provider llm.Provider, profiles ProfileSource, model string, log zerolog.Logger) *Service {
	return &Service{provider: provider, profiles: profiles, model: model, log: log}
}

// Request is one incoming chat call.
type Request struct {
	Message string
	Mode    string
	UserID  int64
	History []models.ChatTurn
}

// Result carries the response headers and the chunk stream. Model ends in
// " (Sim)" when the simulation path answered.
type Result struct {
	Model  string
	Action string
	Chunks <-chan string
}

// SelectModel picks the inference model for a request. Routing hook: today
// every request uses the configured model regardless of content.
func (s *Service) SelectModel(message, mode string) string {
	return s.model
}

// SuggestAction derives the out-of-band UI hint from the raw message. Pure
// keyword matching, not NLP.
func SuggestAction(message string) string {
	m := strings.ToLower(message)
	if (strings.Contains(m, "metronome") || strings.Contains(m, "cpr")) && strings.Contains(m, "start") {
		return ActionStartMetronome
	}
	return ""
}

// BuildMessages assembles the outgoing sequence: system instruction, prior
// turns with a known role, the new user message, and in emergency mode the
// trailing compliance reminder. Turns with any other role are dropped.
func BuildMessages(system string, history []models.ChatTurn, message, mode string) []llm.Message {
	msgs := make([]llm.Message, 0, len(history)+3)
	msgs = append(msgs, llm.Message{Role: "system", Content: system})
	for _, turn := range history {
		if turn.Role != "user" && turn.Role != "assistant" {
			continue
		}
		msgs = append(msgs, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	msgs = append(msgs, llm.Message{Role: "user", Content: message})
	if mode == prompt.ModeEmergency {
		msgs = append(msgs, llm.Message{Role: "system", Content: prompt.Reminder})
	}
	return msgs
}

// Open starts the response stream for req. On a missing provider or a failed
// request setup it switches to the simulation path exactly once; the provider
// is never re-queried. Cancelling ctx tears the stream down.
func (s *Service) Open(ctx context.Context, req Request) Result {
	mode := req.Mode
	if mode == "" {
		mode = prompt.ModeGeneral
	}

	streamID := uuid.NewString()
	model := s.SelectModel(req.Message, mode)
	action := SuggestAction(req.Message)

	system := prompt.Compose(mode)
	if prompt.HistoryAware(model) && req.UserID != 0 {
		if hist, err := s.profiles.GetHistoryByUserID(req.UserID); err == nil {
			system = prompt.WithMedicalContext(system, hist)
		}
	}
	msgs := BuildMessages(system, req.History, req.Message, mode)

	if s.provider == nil {
		s.log.Info().Str("stream_id", streamID).Str("mode", mode).Msg("no provider configured, simulating")
		return s.simulate(ctx, mode, model, action)
	}

	chunks, err := s.provider.StreamCompletion(ctx, model, msgs, llm.Options{
		MaxTokens:   1000,
		Temperature: 0.3,
		Stop:        []string{"\nUser:", "<|eot_id|>", "User:"},
	})
	if err != nil {
		s.log.Warn().Err(err).Str("stream_id", streamID).Str("mode", mode).Msg("provider failed, switching to simulation")
		return s.simulate(ctx, mode, model, action)
	}

	s.log.Info().Str("stream_id", streamID).Str("mode", mode).Str("model", model).Msg("streaming chat response")
	return Result{Model: model, Action: action, Chunks: chunks}
}

func (s *Service) simulate(ctx context.Context, mode, model, action string) Result {
	return Result{
		Model:  model + " (Sim)",
		Action: action,
		Chunks: simulation.Stream(ctx, simulation.Script(mode)),
	}
}
