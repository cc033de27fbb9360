// Package llm routes prompt completions to the configured model providers.
// All production providers speak the OpenAI chat-completion dialect, they
// only differ in endpoint and default model.
package llm

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrProviderNotRegistered     = errors.New("llm: provider not registered")
	ErrProviderAlreadyRegistered = errors.New("llm: provider already registered")
)

// Request is one completion call. Model overrides the provider default when
// set; SystemPrompt is optional.
type Request struct {
	Provider     string
	Model        string
	Prompt       string
	SystemPrompt string
}

// Provider completes one prompt. Implementations must honor ctx
// cancellation, command handlers rely on it for shutdown and /cancel.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// StreamHandler receives the accumulated completion text as it grows.
type StreamHandler func(partial string)

// StreamingProvider is implemented by providers that can deliver the
// completion incrementally. Handlers use it to edit partial output into the
// placeholder message while the completion runs.
type StreamingProvider interface {
	Provider

	CompleteStream(ctx context.Context, req Request, onPartial StreamHandler) (string, error)
}

// Client holds the provider table. Registration happens during startup
// wiring; Complete is safe for concurrent use afterwards.
type Client struct {
	mutex     sync.RWMutex
	providers map[string]Provider
}

func NewClient() *Client {
	return &Client{
		providers: make(map[string]Provider),
	}
}

func (c *Client) RegisterProvider(name string, provider Provider) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, ok := c.providers[name]; ok {
		return fmt.Errorf("%w: %s", ErrProviderAlreadyRegistered, name)
	}

	c.providers[name] = provider

	return nil
}

// Providers lists registered provider names, sorted for stable output in
// user-facing error replies.
func (c *Client) Providers() []string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	names := make([]string, 0, len(c.providers))
	for name := range c.providers {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (c *Client) HasProvider(name string) bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	_, ok := c.providers[name]

	return ok
}

func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	c.mutex.RLock()
	provider, ok := c.providers[req.Provider]
	c.mutex.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w: %s", ErrProviderNotRegistered, req.Provider)
	}

	return provider.Complete(ctx, req)
}

// CompleteStream completes req, delivering the accumulated text through
// onPartial as the provider streams it. A provider without streaming support
// falls back to one Complete call and a single onPartial with the full
// answer.
func (c *Client) CompleteStream(ctx context.Context, req Request, onPartial StreamHandler) (string, error) {
	c.mutex.RLock()
	provider, ok := c.providers[req.Provider]
	c.mutex.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w: %s", ErrProviderNotRegistered, req.Provider)
	}

	if streaming, ok := provider.(StreamingProvider); ok {
		return streaming.CompleteStream(ctx, req, onPartial)
	}

	answer, err := provider.Complete(ctx, req)
	if err != nil {
		return "", err
	}

	if onPartial != nil && answer != "" {
		onPartial(answer)
	}

	return answer, nil
}
