package llm

import (
	"context"
	"time"
)

var _ StreamingProvider = (*Stub)(nil)

// Stub stands in for real providers in the test environment so LLM commands
// can run end to end without spending tokens. Delay simulates provider
// latency, which the thinking animation needs to be observable.
type Stub struct {
	Delay    time.Duration
	Response string
}

// NewStub returns a stub with enough delay for the thinking animation to
// render at least one frame.
func NewStub() *Stub {
	return &Stub{Delay: 2 * time.Second}
}

func (s *Stub) Complete(ctx context.Context, req Request) (string, error) {
	if s.Delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.Delay):
		}
	}

	if s.Response != "" {
		return s.Response, nil
	}

	return "This is a test response from the test environment.\n\nPrompt received: " + req.Prompt, nil
}

// CompleteStream emits the answer in a handful of growing partials so the
// streaming edit path is exercised in the test environment too.
func (s *Stub) CompleteStream(ctx context.Context, req Request, onPartial StreamHandler) (string, error) {
	answer, err := s.Complete(ctx, req)
	if err != nil {
		return "", err
	}

	if onPartial != nil {
		const parts = 4

		runes := []rune(answer)
		for i := 1; i <= parts; i++ {
			partial := string(runes[:len(runes)*i/parts])
			if partial == "" {
				continue
			}

			onPartial(partial)
		}
	}

	return answer, nil
}
