package services

import (
	"context"

	"visitnepal/internal/flow"
	"visitnepal/internal/models/request_models"
	"visitnepal/internal/models/response_models"
	"visitnepal/internal/prompts"
	"visitnepal/pkg/utils"
)

const (
	FlowHiddenGems = "hidden_gems"

	maxHiddenGems = 5
)

type HiddenGemsServiceInterface interface {
	SuggestHiddenGems(ctx context.Context, req request_models.HiddenGemsRequest) (*response_models.HiddenGemsResponse, error)
}

type HiddenGemsService struct {
	runner *flow.Runner
	flow   *flow.Flow[request_models.HiddenGemsRequest, response_models.HiddenGemsResponse]
}

func NewHiddenGemsService(runner *flow.Runner) HiddenGemsServiceInterface {
	return &HiddenGemsService{
		runner: runner,
		flow: &flow.Flow[request_models.HiddenGemsRequest, response_models.HiddenGemsResponse]{
			Name:        FlowHiddenGems,
			Schema:      hiddenGemsSchema,
			Temperature: utils.Float32(0.9),
			Prepare: func(in *request_models.HiddenGemsRequest) error {
				name, err := canonicalDistrict(in.DistrictName)
				if err != nil {
					return err
				}
				in.DistrictName = name
				in.UserPreferences = flow.OptionalText(in.UserPreferences)
				return nil
			},
			Render: func(in request_models.HiddenGemsRequest) (utils.GenerateRequest, error) {
				prompt, err := prompts.HiddenGems(in)
				return utils.GenerateRequest{Prompt: prompt}, err
			},
			Repair: func(_ request_models.HiddenGemsRequest, out *response_models.HiddenGemsResponse) {
				out.HiddenGems = flow.TrimList(out.HiddenGems)
				if len(out.HiddenGems) > maxHiddenGems {
					out.HiddenGems = out.HiddenGems[:maxHiddenGems]
				}
			},
		},
	}
}

func (s *HiddenGemsService) SuggestHiddenGems(ctx context.Context, req request_models.HiddenGemsRequest) (*response_models.HiddenGemsResponse, error) {
	return s.flow.Run(ctx, s.runner, req)
}

var hiddenGemsSchema = &utils.Schema{
	Type:     utils.SchemaObject,
	Order:    []string{"hiddenGems"},
	Required: []string{"hiddenGems"},
	Properties: map[string]*utils.Schema{
		"hiddenGems": stringList("3-5 hidden gems, each with a one or two sentence description."),
	},
}
