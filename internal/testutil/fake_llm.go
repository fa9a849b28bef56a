package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alexanderramin/contentplan/internal/llm"
)

// FakeLLMClient replays scripted replies in order. Once the script runs out
// the last reply repeats.
type FakeLLMClient struct {
	Provider llm.Provider
	Down     bool

	mu       sync.Mutex
	replies  []fakeReply
	requests []llm.GenerateRequest
}

type fakeReply struct {
	text string
	err  error
}

func NewFakeLLMClient(provider llm.Provider) *FakeLLMClient {
	return &FakeLLMClient{Provider: provider}
}

// Reply queues a successful response.
func (f *FakeLLMClient) Reply(text string) *FakeLLMClient {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, fakeReply{text: text})
	return f
}

// Fail queues an error.
func (f *FakeLLMClient) Fail(err error) *FakeLLMClient {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, fakeReply{err: err})
	return f
}

func (f *FakeLLMClient) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)

	if len(f.replies) == 0 {
		return nil, fmt.Errorf("fake %s: no scripted reply: %w", f.Provider, llm.ErrProviderUnavailable)
	}
	r := f.replies[0]
	if len(f.replies) > 1 {
		f.replies = f.replies[1:]
	}
	if r.err != nil {
		return nil, r.err
	}
	return &llm.GenerateResponse{
		Text:     r.text,
		Model:    "fake-" + string(f.Provider),
		Provider: f.Provider,
	}, nil
}

func (f *FakeLLMClient) Available(context.Context) bool { return !f.Down }

// Requests returns a copy of every request received so far.
func (f *FakeLLMClient) Requests() []llm.GenerateRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]llm.GenerateRequest(nil), f.requests...)
}

var ErrNoFakeClient = errors.New("no fake client registered")

// FakeClients maps providers to fakes.
type FakeClients map[llm.Provider]*FakeLLMClient

// Factory returns a client factory over the registered fakes.
func (fc FakeClients) Factory() func(llm.Provider) (llm.LLMClient, error) {
	return func(p llm.Provider) (llm.LLMClient, error) {
		c, ok := fc[p]
		if !ok {
			return nil, fmt.Errorf("%s: %w", p, ErrNoFakeClient)
		}
		return c, nil
	}
}
