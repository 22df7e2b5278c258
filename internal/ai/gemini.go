package ai

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/pfdlens/pfdlens/internal/model"
)

type geminiConfig struct {
	APIKey string `json:"api_key"`
}

type geminiProvider struct {
	apiKey string
}

func (p *geminiProvider) Name() string {
	return "gemini"
}

func (p *geminiProvider) Extract(ctx context.Context, modelName string, req ExtractRequest) (string, error) {
	if p.apiKey == "" {
		return "", ErrUnavailable
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", err
	}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   geminiExtractionSchema(),
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.System}}}
	}
	contents := []*genai.Content{{Parts: []*genai.Part{
		{Text: req.Prompt},
		{InlineData: &genai.Blob{MIMEType: req.ImageMIME, Data: req.ImageData}},
	}}}
	resp, err := client.Models.GenerateContent(ctx, modelName, contents, config)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}

func geminiExtractionSchema() *genai.Schema {
	types := make([]string, 0, len(model.AllEquipmentTypes()))
	for _, t := range model.AllEquipmentTypes() {
		types = append(types, string(t))
	}
	equipmentType := func() *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Enum: types}
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"equipment": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"id":   {Type: genai.TypeString},
						"type": equipmentType(),
					},
					Required: []string{"id", "type"},
				},
			},
			"connections": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"from_id":   {Type: genai.TypeString},
						"from_type": equipmentType(),
						"to_id":     {Type: genai.TypeString},
						"to_type":   equipmentType(),
					},
					Required: []string{"from_id", "from_type", "to_id", "to_type"},
				},
			},
		},
		Required: []string{"equipment", "connections"},
	}
}

func createGeminiFactory(args interface{}) (IProvider, error) {
	cfg := &geminiConfig{}
	if err := decodeConfig(args, cfg); err != nil {
		return nil, err
	}
	return &geminiProvider{apiKey: strings.TrimSpace(cfg.APIKey)}, nil
}

func init() {
	Register("gemini", createGeminiFactory)
}
