// Package flowtest provides an in-memory LLMClient for tests.
package flowtest

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"visitnepal/pkg/utils"
)

// FakeClient replays scripted replies. Replies are consumed in order and the
// last one repeats.
type FakeClient struct {
	mu sync.Mutex

	Replies []string
	Err     error
	// Delay holds each text generation until it elapses or ctx is done.
	Delay    time.Duration
	Image    *utils.GeneratedImage
	ImageErr error

	Requests     []utils.GenerateRequest
	ImagePrompts []string
}

var _ utils.LLMClient = (*FakeClient)(nil)

// Reply returns a client that answers every call with v encoded as JSON.
func Reply(v any) *FakeClient {
	return &FakeClient{Replies: []string{JSON(v)}}
}

func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func (f *FakeClient) Name() string { return "fake" }

func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) Generate(ctx context.Context, req utils.GenerateRequest) (*utils.GenerateResponse, error) {
	f.mu.Lock()
	f.Requests = append(f.Requests, req)
	delay := f.Delay
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(delay):
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.Err != nil {
		return nil, f.Err
	}
	if len(f.Replies) == 0 {
		return nil, errors.New("fake: no reply scripted")
	}

	text := f.Replies[0]
	if len(f.Replies) > 1 {
		f.Replies = f.Replies[1:]
	}
	return &utils.GenerateResponse{Text: text, Model: "fake-model", Duration: time.Millisecond}, nil
}

func (f *FakeClient) GenerateImage(ctx context.Context, prompt string) (*utils.GeneratedImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ImagePrompts = append(f.ImagePrompts, prompt)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.ImageErr != nil {
		return nil, f.ImageErr
	}
	if f.Image == nil {
		return nil, utils.ErrImageGenerationUnsupported
	}
	return f.Image, nil
}

// Calls reports how many text generations were requested.
func (f *FakeClient) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Requests)
}

// LastRequest returns the most recent text generation request.
func (f *FakeClient) LastRequest() utils.GenerateRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Requests) == 0 {
		return utils.GenerateRequest{}
	}
	return f.Requests[len(f.Requests)-1]
}
