package utils

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenAITestServer(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenAIClient(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1"})
}

func TestOpenAIClient_Generate(t *testing.T) {
	var captured map[string]any
	client := newOpenAITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "{\"caption\":\"hi\"}"}}]
		}`))
	})

	resp, err := client.Generate(context.Background(), GenerateRequest{
		Flow:        "postcard caption",
		Prompt:      "Write a caption",
		Images:      []InlineImage{{MIMEType: "image/png", Data: []byte("png")}},
		Temperature: Float32(0.5),
		Schema: &Schema{
			Type:       SchemaObject,
			Required:   []string{"caption"},
			Properties: map[string]*Schema{"caption": {Type: SchemaString}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"caption":"hi"}`, resp.Text)
	assert.Equal(t, "gpt-4o-mini", resp.Model)

	format := captured["response_format"].(map[string]any)
	assert.Equal(t, "json_schema", format["type"])
	schema := format["json_schema"].(map[string]any)
	assert.Equal(t, "postcard_caption", schema["name"])

	messages := captured["messages"].([]any)
	require.Len(t, messages, 1)
	parts := messages[0].(map[string]any)["content"].([]any)
	require.Len(t, parts, 2)
	image := parts[1].(map[string]any)["image_url"].(map[string]any)
	assert.Equal(t, "data:image/png;base64,cG5n", image["url"])
}

func TestOpenAIClient_GenerateErrors(t *testing.T) {
	t.Run("api error", func(t *testing.T) {
		client := newOpenAITestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit"}}`))
		})

		_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "hi"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate limited")
	})

	t.Run("content filter", func(t *testing.T) {
		client := newOpenAITestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[{"index":0,"finish_reason":"content_filter","message":{"role":"assistant","content":""}}]}`))
		})

		_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "hi"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "content filter")
	})

	t.Run("no choices", func(t *testing.T) {
		client := newOpenAITestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[]}`))
		})

		_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "hi"})
		require.Error(t, err)
	})
}

func TestOpenAIClient_GenerateImage(t *testing.T) {
	client := newOpenAITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/images/generations", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"created": 1,
			"data":    []map[string]string{{"b64_json": base64.StdEncoding.EncodeToString([]byte("image-bytes"))}},
		})
	})

	img, err := client.GenerateImage(context.Background(), "a stupa at dusk")
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MIMEType)
	assert.Equal(t, []byte("image-bytes"), img.Data)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString([]byte("image-bytes")), img.DataURI())
}

func TestToOpenAISchema(t *testing.T) {
	def := toOpenAISchema(&Schema{
		Type:     SchemaObject,
		Required: []string{"days"},
		Properties: map[string]*Schema{
			"days": {Type: SchemaArray, Description: "day numbers", Items: &Schema{Type: SchemaInteger}},
		},
	})

	assert.Equal(t, jsonschema.Object, def.Type)
	assert.Equal(t, []string{"days"}, def.Required)
	require.Contains(t, def.Properties, "days")
	days := def.Properties["days"]
	assert.Equal(t, jsonschema.Array, days.Type)
	assert.Equal(t, "day numbers", days.Description)
	require.NotNil(t, days.Items)
	assert.Equal(t, jsonschema.Integer, days.Items.Type)
}
