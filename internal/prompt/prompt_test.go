package prompt

import (
	"strings"
	"testing"

	"medichat-backend/internal/models"
)

func TestComposeModes(t *testing.T) {
	if got := Compose(ModeGeneral); got != GeneralPrompt {
		t.Fatalf("general mode returned wrong prompt")
	}
	if got := Compose(ModeEmergency); got != EmergencyPrompt {
		t.Fatalf("emergency mode returned wrong prompt")
	}
	// Unknown modes fall back to the general persona verbatim.
	if got := Compose("voice"); got != GeneralPrompt {
		t.Fatalf("unknown mode should compose the general prompt, got %q", got)
	}
}

func TestEmergencyPromptRequiresSingleLineOptionsTag(t *testing.T) {
	if !strings.Contains(EmergencyPrompt, "[OPTIONS: Choice 1 | Choice 2]") {
		t.Fatal("emergency prompt lost the OPTIONS format rule")
	}
	if !strings.Contains(Reminder, "[OPTIONS: Option A | Option B]") {
		t.Fatal("reminder lost the OPTIONS format rule")
	}
}

func TestHistoryAwareGate(t *testing.T) {
	if HistoryAware("Meta-Llama-3.1-8B-Instruct") {
		t.Fatal("default model must not be history-aware")
	}
	if !HistoryAware("meditron-70b") {
		t.Fatal("meditron models must be history-aware")
	}
}

func TestWithMedicalContext(t *testing.T) {
	hist := models.MedicalHistory{Allergies: "penicillin", Conditions: "asthma"}
	got := WithMedicalContext(GeneralPrompt, hist)
	if !strings.HasPrefix(got, GeneralPrompt) {
		t.Fatal("context clause must append, not replace")
	}
	if !strings.Contains(got, "Allergies: penicillin") || !strings.Contains(got, "Conditions: asthma") {
		t.Fatalf("profile not embedded: %q", got)
	}
}
