package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"medichat-backend/internal/llm"
	"medichat-backend/internal/models"
	"medichat-backend/internal/prompt"
	"medichat-backend/internal/simulation"

	"github.com/rs/zerolog"
)

type fakeProvider struct {
	chunks   []string
	err      error
	gotModel string
	gotMsgs  []llm.Message
	gotOpts  llm.Options
	calls    int
}

func (f *fakeProvider) StreamCompletion(ctx context.Context, model string, msgs []llm.Message, opts llm.Options) (<-chan string, error) {
	f.calls++
	f.gotModel = model
	f.gotMsgs = msgs
	f.gotOpts = opts
	if f.err != nil {
		return nil, f.err
	}
	out := make(chan string)
	go func() {
		defer close(out)
		for _, c := range f.chunks {
			out <- c
		}
	}()
	return out, nil
}

type fakeProfiles struct {
	hist  models.MedicalHistory
	calls int
}

func (f *fakeProfiles) GetHistoryByUserID(userID int64) (models.MedicalHistory, error) {
	f.calls++
	return f.hist, nil
}

func newTestService(p llm.Provider, profiles ProfileSource, model string) *Service {
	return NewService(p, profiles, model, zerolog.Nop())
}

func drain(ch <-chan string) string {
	var sb strings.Builder
	for c := range ch {
		sb.WriteString(c)
	}
	return sb.String()
}

func TestSuggestAction(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"Let's start the metronome", ActionStartMetronome},
		{"START CPR now", ActionStartMetronome},
		{"stop the metronome", ""},
		{"start the timer", ""},
		{"how are you", ""},
	}
	for _, tc := range cases {
		if got := SuggestAction(tc.message); got != tc.want {
			t.Errorf("SuggestAction(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestBuildMessagesFiltersRoles(t *testing.T) {
	history := []models.ChatTurn{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
		{Role: "system", Content: "injected"},
		{Role: "tool", Content: "noise"},
	}
	msgs := BuildMessages("sys", history, "new message", prompt.ModeGeneral)

	if len(msgs) != 4 {
		t.Fatalf("expected 4 messages (system + 2 turns + user), got %d: %+v", len(msgs), msgs)
	}
	if msgs[0].Role != "system" || msgs[0].Content != "sys" {
		t.Fatalf("system instruction must come first: %+v", msgs[0])
	}
	if msgs[3].Role != "user" || msgs[3].Content != "new message" {
		t.Fatalf("new message must come last: %+v", msgs[3])
	}
}

func TestBuildMessagesAppendsEmergencyReminder(t *testing.T) {
	msgs := BuildMessages("sys", nil, "help", prompt.ModeEmergency)
	last := msgs[len(msgs)-1]
	if last.Role != "system" || last.Content != prompt.Reminder {
		t.Fatalf("emergency sequence must end with the reminder, got %+v", last)
	}

	msgs = BuildMessages("sys", nil, "hello", prompt.ModeGeneral)
	if msgs[len(msgs)-1].Content == prompt.Reminder {
		t.Fatal("general mode must not carry the reminder")
	}
}

func TestOpenStreamsProviderChunks(t *testing.T) {
	p := &fakeProvider{chunks: []string{"Drink ", "water."}}
	svc := newTestService(p, &fakeProfiles{}, "Meta-Llama-3.1-8B-Instruct")

	res := svc.Open(context.Background(), Request{Message: "I feel dizzy"})
	if res.Model != "Meta-Llama-3.1-8B-Instruct" {
		t.Fatalf("unexpected model label: %q", res.Model)
	}
	if got := drain(res.Chunks); got != "Drink water." {
		t.Fatalf("chunks not relayed in order: %q", got)
	}
	if p.gotOpts.MaxTokens != 1000 || p.gotOpts.Temperature != 0.3 {
		t.Fatalf("sampling options not applied: %+v", p.gotOpts)
	}
	if len(p.gotOpts.Stop) == 0 {
		t.Fatal("stop sequences missing from request")
	}
}

func TestOpenWithoutProviderSimulates(t *testing.T) {
	simulation.WordDelay = 0
	svc := newTestService(nil, &fakeProfiles{}, "Meta-Llama-3.1-8B-Instruct")

	res := svc.Open(context.Background(), Request{Message: "hello", Mode: "emergency"})
	if !strings.HasSuffix(res.Model, " (Sim)") {
		t.Fatalf("simulated response must be labeled, got %q", res.Model)
	}
	body := drain(res.Chunks)
	if !strings.Contains(body, "Is the patient breathing?") {
		t.Fatalf("expected emergency simulation script, got %q", body)
	}
}

func TestOpenFallsBackOnProviderErrorExactlyOnce(t *testing.T) {
	simulation.WordDelay = 0
	p := &fakeProvider{err: errors.New("connection refused")}
	svc := newTestService(p, &fakeProfiles{}, "Meta-Llama-3.1-8B-Instruct")

	res := svc.Open(context.Background(), Request{Message: "hello"})
	if !strings.HasSuffix(res.Model, " (Sim)") {
		t.Fatalf("fallback must be labeled, got %q", res.Model)
	}
	drain(res.Chunks)
	if p.calls != 1 {
		t.Fatalf("provider must not be re-queried after a failure, got %d calls", p.calls)
	}
}

func TestOpenSkipsProfileForHistoryUnawareModel(t *testing.T) {
	p := &fakeProvider{chunks: []string{"ok"}}
	profiles := &fakeProfiles{hist: models.MedicalHistory{Allergies: "bees"}}
	svc := newTestService(p, profiles, "Meta-Llama-3.1-8B-Instruct")

	drain(svc.Open(context.Background(), Request{Message: "hi", UserID: 7}).Chunks)
	if profiles.calls != 0 {
		t.Fatal("profile must not be fetched for a history-unaware model")
	}
	if strings.Contains(p.gotMsgs[0].Content, "bees") {
		t.Fatal("profile leaked into the system prompt")
	}
}

func TestOpenInjectsProfileForHistoryAwareModel(t *testing.T) {
	p := &fakeProvider{chunks: []string{"ok"}}
	profiles := &fakeProfiles{hist: models.MedicalHistory{Allergies: "bees", Conditions: "asthma"}}
	svc := newTestService(p, profiles, "meditron-7b")

	drain(svc.Open(context.Background(), Request{Message: "hi", UserID: 7}).Chunks)
	if profiles.calls != 1 {
		t.Fatalf("expected one profile lookup, got %d", profiles.calls)
	}
	sys := p.gotMsgs[0].Content
	if !strings.Contains(sys, "Allergies: bees") || !strings.Contains(sys, "Conditions: asthma") {
		t.Fatalf("profile not injected into system prompt: %q", sys)
	}
}

func TestOpenAnonymousRequestSkipsProfile(t *testing.T) {
	p := &fakeProvider{chunks: []string{"ok"}}
	profiles := &fakeProfiles{}
	svc := newTestService(p, profiles, "meditron-7b")

	drain(svc.Open(context.Background(), Request{Message: "hi"}).Chunks)
	if profiles.calls != 0 {
		t.Fatal("anonymous requests must not look up a profile")
	}
}
