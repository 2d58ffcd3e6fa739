package intelligence

import (
	"context"
	"sync"

	"digitalmindset/models"
)

// FakeCall records one GenerateText invocation.
type FakeCall struct {
	Messages    []models.ChatMessage
	Temperature float32
}

// FakeGenerator replays scripted responses in order and records calls. When
// the script runs out it repeats the last response. Err, when set, fails
// every call.
type FakeGenerator struct {
	mu        sync.Mutex
	Responses []string
	Err       error
	Calls     []FakeCall
}

func NewFakeGenerator(responses ...string) *FakeGenerator {
	return &FakeGenerator{Responses: responses}
}

func (f *FakeGenerator) GenerateText(_ context.Context, messages []models.ChatMessage, temperature float32) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, FakeCall{Messages: append([]models.ChatMessage(nil), messages...), Temperature: temperature})
	if f.Err != nil {
		return "", upstream("fake", f.Err)
	}
	if len(f.Responses) == 0 {
		return "", nil
	}
	idx := len(f.Calls) - 1
	if idx >= len(f.Responses) {
		idx = len(f.Responses) - 1
	}
	return f.Responses[idx], nil
}

// CallCount returns how many times GenerateText ran.
func (f *FakeGenerator) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}
