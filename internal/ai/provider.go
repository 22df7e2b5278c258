package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrUnavailable = errors.New("ai provider not configured")

// ExtractRequest carries everything one structured extraction call needs: the
// instruction pair plus the raw image bytes and their sniffed mime type. Each
// provider embeds the image and the response schema in its own wire format.
type ExtractRequest struct {
	System    string
	Prompt    string
	ImageMIME string
	ImageData []byte
}

type IProvider interface {
	Name() string
	// Extract sends the request to the hosted model and returns the raw JSON
	// text of the schema-constrained response.
	Extract(ctx context.Context, model string, req ExtractRequest) (string, error)
}

// IExtractor is an IProvider bound to a fixed model name.
type IExtractor interface {
	Extract(ctx context.Context, req ExtractRequest) (string, error)
}

type extractor struct {
	provider IProvider
	model    string
}

func NewExtractor(p IProvider, model string) IExtractor {
	return &extractor{provider: p, model: model}
}

func (e *extractor) Extract(ctx context.Context, req ExtractRequest) (string, error) {
	return e.provider.Extract(ctx, e.model, req)
}

type ProviderFactory func(args interface{}) (IProvider, error)

var registry = map[string]ProviderFactory{}

func Register(name string, factory ProviderFactory) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || factory == nil {
		return
	}
	registry[key] = factory
}

func NewProvider(name string, args interface{}) (IProvider, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, fmt.Errorf("ai.provider is required")
	}
	factory := registry[key]
	if factory == nil {
		return nil, fmt.Errorf("unsupported ai provider: %s", name)
	}
	return factory(args)
}

func decodeConfig(args interface{}, dst interface{}) error {
	if args == nil {
		return fmt.Errorf("ai provider config is required")
	}
	data, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode ai provider config: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode ai provider config: %w", err)
	}
	return nil
}
