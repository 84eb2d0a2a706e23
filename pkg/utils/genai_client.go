package utils

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// GenAIClient implements LLMClient on the google.golang.org/genai SDK. It is
// the only Gemini client able to return generated images.
type GenAIClient struct {
	client     *genai.Client
	model      string
	imageModel string
}

type GenAIConfig struct {
	APIKey     string
	Model      string
	ImageModel string
	// BaseURL overrides the API endpoint; empty uses the SDK default.
	BaseURL string
}

func NewGenAIClient(cfg GenAIConfig) (*GenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = "gemini-2.0-flash-preview-image-generation"
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(context.Background(), clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIClient{
		client:     client,
		model:      cfg.Model,
		imageModel: cfg.ImageModel,
	}, nil
}

func (c *GenAIClient) Name() string { return "genai:" + c.model }

func (c *GenAIClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	for _, img := range req.Images {
		parts = append(parts, genai.NewPartFromBytes(img.Data, img.MIMEType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	config := &genai.GenerateContentConfig{}
	if req.Schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = toGenAISchema(req.Schema)
	}
	if req.Temperature != nil {
		config.Temperature = genai.Ptr(*req.Temperature)
	}
	if req.StrictSafety {
		config.SafetySettings = genaiStrictSafety()
	}

	started := time.Now()
	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("genai: %w", err)
	}
	if len(result.Candidates) == 0 {
		return nil, fmt.Errorf("genai: no content generated")
	}

	return &GenerateResponse{
		Text:     result.Text(),
		Model:    c.model,
		Duration: time.Since(started),
	}, nil
}

func (c *GenAIClient) GenerateImage(ctx context.Context, prompt string) (*GeneratedImage, error) {
	// The image model only answers when both modalities are requested.
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}

	result, err := c.client.Models.GenerateContent(ctx, c.imageModel, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("genai image: %w", err)
	}

	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &GeneratedImage{
					MIMEType: part.InlineData.MIMEType,
					Data:     part.InlineData.Data,
				}, nil
			}
		}
	}
	return nil, fmt.Errorf("genai image: no media returned")
}

func (c *GenAIClient) Close() error { return nil }

func toGenAISchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Description:      s.Description,
		Required:         s.Required,
		Enum:             s.Enum,
		PropertyOrdering: s.Order,
		Items:            toGenAISchema(s.Items),
	}
	switch s.Type {
	case SchemaObject:
		out.Type = genai.TypeObject
	case SchemaArray:
		out.Type = genai.TypeArray
	case SchemaInteger:
		out.Type = genai.TypeInteger
	case SchemaNumber:
		out.Type = genai.TypeNumber
	case SchemaBoolean:
		out.Type = genai.TypeBoolean
	default:
		out.Type = genai.TypeString
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenAISchema(prop)
		}
	}
	return out
}

func genaiStrictSafety() []*genai.SafetySetting {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHateSpeech,
		genai.HarmCategoryDangerousContent,
		genai.HarmCategoryHarassment,
		genai.HarmCategorySexuallyExplicit,
	}
	settings := make([]*genai.SafetySetting, 0, len(categories))
	for _, category := range categories {
		settings = append(settings, &genai.SafetySetting{
			Category:  category,
			Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
		})
	}
	return settings
}
