package services

import (
	"context"
	"strings"

	"visitnepal/internal/flow"
	"visitnepal/internal/models/request_models"
	"visitnepal/internal/models/response_models"
	"visitnepal/internal/prompts"
	"visitnepal/pkg/utils"
)

const FlowTourGuideChat = "tour_guide_chat"

type ChatServiceInterface interface {
	// Chat answers the latest user message as the tour guide, given the
	// conversation so far. The service keeps no state between calls.
	Chat(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatResponse, error)
}

type ChatService struct {
	runner *flow.Runner
	flow   *flow.Flow[request_models.ChatRequest, response_models.ChatResponse]
}

func NewChatService(runner *flow.Runner) ChatServiceInterface {
	return &ChatService{
		runner: runner,
		flow: &flow.Flow[request_models.ChatRequest, response_models.ChatResponse]{
			Name:         FlowTourGuideChat,
			Schema:       chatSchema,
			Temperature:  utils.Float32(0.7),
			StrictSafety: true,
			Prepare:      prepareChatRequest,
			Render: func(in request_models.ChatRequest) (utils.GenerateRequest, error) {
				prompt, err := prompts.TourGuideChat(in)
				return utils.GenerateRequest{Prompt: prompt}, err
			},
			Repair: func(_ request_models.ChatRequest, out *response_models.ChatResponse) {
				out.Response = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(out.Response), "Pasang:"))
			},
		},
	}
}

func (s *ChatService) Chat(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatResponse, error) {
	return s.flow.Run(ctx, s.runner, req)
}

// prepareChatRequest maps the "model" role onto assistant and drops empty turns.
func prepareChatRequest(in *request_models.ChatRequest) error {
	in.UserMessage = strings.TrimSpace(in.UserMessage)

	history := make([]request_models.ChatTurn, 0, len(in.History))
	for _, turn := range in.History {
		turn.Role = strings.ToLower(strings.TrimSpace(turn.Role))
		if turn.Role == request_models.ChatRoleModel {
			turn.Role = request_models.ChatRoleAssistant
		}
		turn.Content = strings.TrimSpace(turn.Content)
		if turn.Content == "" {
			continue
		}
		history = append(history, turn)
	}
	in.History = history
	return nil
}

var chatSchema = &utils.Schema{
	Type:     utils.SchemaObject,
	Order:    []string{"response"},
	Required: []string{"response"},
	Properties: map[string]*utils.Schema{
		"response": {Type: utils.SchemaString, Description: "Pasang's reply to the user."},
	},
}
