// Package simulation provides the network-free canned responses used when
// the inference provider is unreachable or unconfigured.
package simulation

import (
	"context"
	"strings"
	"time"

	"medichat-backend/internal/prompt"
)

const (
	generalScript = "I am currently in simulation mode. The AI service is unavailable. In a real emergency, I would guide you through CPR or other procedures. [OPTIONS: Retry | Simulation Info]"

	emergencyScript = "Emergency Simulation: Ensure the scene is safe. Is the patient breathing? [OPTIONS: Yes | No]"
)

// WordDelay is the artificial pause between emitted words, emulating live
// generation. Tests set it to zero.
var WordDelay = 50 * time.Millisecond

// Script returns the canned response for the given mode.
func Script(mode string) string {
	if mode == prompt.ModeEmergency {
		return emergencyScript
	}
	return generalScript
}

// Stream emits text word by word on the returned channel, pausing WordDelay
// between words. The channel is closed at the end of the script or when ctx
// is canceled.
func Stream(ctx context.Context, text string) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		for _, word := range strings.Split(text, " ") {
			select {
			case out <- word + " ":
			case <-ctx.Done():
				return
			}
			select {
			case <-time.After(WordDelay):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
