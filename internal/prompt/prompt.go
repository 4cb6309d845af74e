// Package prompt builds the system instructions sent ahead of every chat
// completion. Keeping the prompt text in one file makes it easy to tweak
// without touching the orchestration code.
package prompt

import (
	"fmt"
	"strings"

	"medichat-backend/internal/models"
)

const (
	ModeGeneral   = "general"
	ModeEmergency = "emergency"
)

const (
	// GeneralPrompt is the persona for conversational health Q&A. Any
	// unrecognized mode falls back to it.
	GeneralPrompt = "You are Dr. Samantha, a helpful conversational AI for general health queries."

	// EmergencyPrompt keeps responses short, actionable and machine-parsable:
	// one instruction, one yes/no question, and a single-line trailing
	// [OPTIONS: ...] tag the client turns into buttons.
	EmergencyPrompt = "You are an emergency response assistant. CRITICAL CONTEXT: Emergency services have been notified and are on the way. YOUR GOAL: Guide the user (first responder) through immediate life-saving steps until help arrives.\n" +
		"RULES:\n" +
		"1. RESPONSE STRUCTURE: [Actionable Advice] + [Next Question].\n" +
		"   - First, give ONE clear, short instruction on what to do NOW based on the user's input (e.g., 'Lay them on their back,' 'Apply pressure').\n" +
		"   - Then, ask ONE simple Yes/No question to determine the next step.\n" +
		"2. Keep it extremely short. No long paragraphs.\n" +
		"3. At the end of every response, strictly provide valid user choices in this format: [OPTIONS: Choice 1 | Choice 2]. Do NOT add newlines inside the brackets.\n" +
		"4. If CPR is needed, ask if they want a metronome. If they say yes, say 'Starting metronome' and STOP. Do NOT type 'beep', 'tick', or simulate the sound.\n" +
		"5. Do not simulate the user.\n" +
		"Example: 'Apply direct pressure to the wound. Is the bleeding slowing down? [OPTIONS: Yes | No]'"

	// Reminder is appended as a trailing system message in emergency mode;
	// small models drift from the OPTIONS format without it.
	Reminder = "REMINDER: Keep response short. YOU MUST END WITH [OPTIONS: Option A | Option B]. Do not add newlines inside the brackets."
)

// historyAwareMarker gates medical-context injection. Only models flagged as
// history-aware get the profile appended; the default model is not, so the
// branch stays dormant until model routing selects one.
const historyAwareMarker = "meditron"

// Compose returns the system instruction for the requested mode.
func Compose(mode string) string {
	if mode == ModeEmergency {
		return EmergencyPrompt
	}
	return GeneralPrompt
}

// HistoryAware reports whether the model should receive the user's profile.
func HistoryAware(model string) bool {
	return strings.Contains(model, historyAwareMarker)
}

// WithMedicalContext appends the profile's allergy and condition text to the
// instruction. The values are interpolated as-is.
func WithMedicalContext(instruction string, hist models.MedicalHistory) string {
	return instruction + fmt.Sprintf(" User Context - Allergies: %s, Conditions: %s.", hist.Allergies, hist.Conditions)
}
