package utils

import (
	"context"
	"strings"
	"time"
)

// LLMClient is the boundary to a hosted generative model. One call is one
// round trip: no retries, no streaming.
type LLMClient interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
	GenerateImage(ctx context.Context, prompt string) (*GeneratedImage, error)
	Name() string
	Close() error
}

// SchemaType mirrors the JSON schema primitive types understood by every provider.
type SchemaType string

const (
	SchemaObject  SchemaType = "object"
	SchemaArray   SchemaType = "array"
	SchemaString  SchemaType = "string"
	SchemaInteger SchemaType = "integer"
	SchemaNumber  SchemaType = "number"
	SchemaBoolean SchemaType = "boolean"
)

// Schema is a provider-neutral description of the expected JSON output.
// Each client converts it to its own SDK type.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	// Order keeps property order stable for providers that honour it.
	Order    []string
	Required []string
	Items    *Schema
	Enum     []string
}

// PropertyNames returns Order when set, otherwise the property keys.
func (s *Schema) PropertyNames() []string {
	if len(s.Order) > 0 {
		return s.Order
	}
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	return names
}

// InlineImage is an image sent to the model alongside the prompt.
type InlineImage struct {
	MIMEType string
	Data     []byte
}

// Format returns the subtype of the MIME type, e.g. "png" for image/png.
func (i InlineImage) Format() string {
	_, sub, ok := strings.Cut(i.MIMEType, "/")
	if !ok {
		return i.MIMEType
	}
	return sub
}

type GenerateRequest struct {
	// Flow names the caller, used in logs and error messages.
	Flow   string
	Prompt string
	Images []InlineImage
	// Schema requests JSON output; nil means free text.
	Schema      *Schema
	Temperature *float32
	// StrictSafety blocks harmful categories at medium probability and above.
	StrictSafety bool
}

type GenerateResponse struct {
	Text     string
	Model    string
	Duration time.Duration
}

type GeneratedImage struct {
	MIMEType string
	Data     []byte
}

// DataURI encodes the image as data:<mime>;base64,<payload>.
func (g *GeneratedImage) DataURI() string {
	return EncodeDataURI(g.MIMEType, g.Data)
}

func Float32(v float32) *float32 { return &v }
