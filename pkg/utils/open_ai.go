package utils

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// OpenAIClient implements LLMClient with chat completions (JSON schema
// response format) and the images endpoint.
type OpenAIClient struct {
	client     *openai.Client
	model      string
	imageModel string
}

type OpenAIConfig struct {
	APIKey     string
	Model      string
	ImageModel string
	// BaseURL points at an OpenAI-compatible endpoint; empty uses api.openai.com.
	BaseURL string
}

var schemaNameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	if cfg.Model == "" {
		cfg.Model = openai.GPT4oMini
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = openai.CreateImageModelDallE3
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIClient{
		client:     openai.NewClientWithConfig(clientConfig),
		model:      cfg.Model,
		imageModel: cfg.ImageModel,
	}
}

func (c *OpenAIClient) Name() string { return "openai:" + c.model }

func (c *OpenAIClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	message := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if len(req.Images) == 0 {
		message.Content = req.Prompt
	} else {
		message.MultiContent = []openai.ChatMessagePart{{Type: openai.ChatMessagePartTypeText, Text: req.Prompt}}
		for _, img := range req.Images {
			message.MultiContent = append(message.MultiContent, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    EncodeDataURI(img.MIMEType, img.Data),
					Detail: openai.ImageURLDetailAuto,
				},
			})
		}
	}

	chatReq := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: []openai.ChatCompletionMessage{message},
	}
	if req.Temperature != nil {
		chatReq.Temperature = *req.Temperature
	}
	if req.Schema != nil {
		definition := toOpenAISchema(req.Schema)
		name := schemaNameSanitizer.ReplaceAllString(req.Flow, "_")
		if name == "" {
			name = "response"
		}
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   name,
				Schema: &definition,
				// Strict mode forbids optional properties.
				Strict: false,
			},
		}
	}

	started := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: no choices returned")
	}
	choice := resp.Choices[0]
	if choice.FinishReason == openai.FinishReasonContentFilter {
		return nil, fmt.Errorf("openai: response blocked by content filter")
	}

	return &GenerateResponse{
		Text:     choice.Message.Content,
		Model:    resp.Model,
		Duration: time.Since(started),
	}, nil
}

func (c *OpenAIClient) GenerateImage(ctx context.Context, prompt string) (*GeneratedImage, error) {
	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          c.imageModel,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, fmt.Errorf("openai image: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("openai image: no media returned")
	}

	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("openai image: decode payload: %w", err)
	}
	return &GeneratedImage{MIMEType: "image/png", Data: data}, nil
}

func (c *OpenAIClient) Close() error { return nil }

func toOpenAISchema(s *Schema) jsonschema.Definition {
	out := jsonschema.Definition{
		Description: s.Description,
		Required:    s.Required,
		Enum:        s.Enum,
	}
	switch s.Type {
	case SchemaObject:
		out.Type = jsonschema.Object
	case SchemaArray:
		out.Type = jsonschema.Array
	case SchemaInteger:
		out.Type = jsonschema.Integer
	case SchemaNumber:
		out.Type = jsonschema.Number
	case SchemaBoolean:
		out.Type = jsonschema.Boolean
	default:
		out.Type = jsonschema.String
	}
	if s.Items != nil {
		items := toOpenAISchema(s.Items)
		out.Items = &items
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]jsonschema.Definition, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toOpenAISchema(prop)
		}
	}
	return out
}
