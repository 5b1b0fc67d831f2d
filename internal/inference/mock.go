package inference

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// MockParaphraser returns simulated paraphrases with a configurable delay.
// Used for development and testing without calling the inference API.
type MockParaphraser struct {
	Delay time.Duration
}

func (m *MockParaphraser) Name() string { return "Mock" }

func (m *MockParaphraser) Paraphrase(ctx context.Context, text string) (Result, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return Failure{Message: fmt.Sprintf("mock: %v", ctx.Err())}, nil
		}
	}

	// Capitalize the first letter and end with a period.
	out := strings.TrimSpace(text)
	if len(out) > 0 && out[0] >= 'a' && out[0] <= 'z' {
		out = strings.ToUpper(out[:1]) + out[1:]
	}
	if out != "" && !strings.HasSuffix(out, ".") {
		out += "."
	}
	return Success{Paraphrased: out}, nil
}
