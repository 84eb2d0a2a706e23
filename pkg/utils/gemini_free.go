package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements LLMClient on the generative-ai-go SDK. The SDK has
// no image output, so GenerateImage always fails.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-2.0-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Name() string { return "gemini:" + c.model }

func (c *GeminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	m := c.client.GenerativeModel(c.model)
	if req.Schema != nil {
		// JSON-only output so the flow can decode directly.
		m.ResponseMIMEType = "application/json"
		m.ResponseSchema = toGeminiSchema(req.Schema)
	}
	if req.Temperature != nil {
		m.SetTemperature(*req.Temperature)
	}
	if req.StrictSafety {
		m.SafetySettings = geminiStrictSafety()
	}

	parts := make([]genai.Part, 0, len(req.Images)+1)
	parts = append(parts, genai.Text(req.Prompt))
	for _, img := range req.Images {
		parts = append(parts, genai.Blob{MIMEType: img.MIMEType, Data: img.Data})
	}

	started := time.Now()
	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
			return nil, fmt.Errorf("gemini: prompt blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return nil, fmt.Errorf("gemini: no content generated")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}

	return &GenerateResponse{
		Text:     text.String(),
		Model:    c.model,
		Duration: time.Since(started),
	}, nil
}

func (c *GeminiClient) GenerateImage(ctx context.Context, prompt string) (*GeneratedImage, error) {
	return nil, ErrImageGenerationUnsupported
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func toGeminiSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Description: s.Description,
		Required:    s.Required,
		Enum:        s.Enum,
		Items:       toGeminiSchema(s.Items),
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
			out.Properties[name] = toGeminiSchema(prop)
		}
	}
	return out
}

func geminiStrictSafety() []*genai.SafetySetting {
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
			Threshold: genai.HarmBlockMediumAndAbove,
		})
	}
	return settings
}
