package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"visitnepal/internal/catalog"
	"visitnepal/internal/flow"
	"visitnepal/internal/models/request_models"
	"visitnepal/internal/models/response_models"
	"visitnepal/internal/prompts"
	mem "visitnepal/pkg/memcache"
	"visitnepal/pkg/utils"
)

const (
	FlowDistrictDetails = "district_details"
	FlowDistrictImage   = "district_image"
)

type DistrictServiceInterface interface {
	GetDistrictDetails(ctx context.Context, req request_models.DistrictDetailsRequest) (*response_models.DistrictDetailsResponse, error)
	GenerateDistrictImage(ctx context.Context, req request_models.DistrictImageRequest) (*response_models.DistrictImageResponse, error)
	// ExploreDistrict returns details and image together. A failed image is
	// reported in ImageError rather than failing the call.
	ExploreDistrict(ctx context.Context, req request_models.DistrictRequest) (*response_models.DistrictOverview, error)
}

type DistrictService struct {
	runner  *flow.Runner
	cache   mem.FlowCacheStore
	logger  *zap.Logger
	details *flow.Flow[request_models.DistrictDetailsRequest, response_models.DistrictDetailsResponse]
}

func NewDistrictService(runner *flow.Runner, cache mem.FlowCacheStore, logger *zap.Logger) DistrictServiceInterface {
	return &DistrictService{
		runner: runner,
		cache:  cache,
		logger: logger,
		details: &flow.Flow[request_models.DistrictDetailsRequest, response_models.DistrictDetailsResponse]{
			Name:        FlowDistrictDetails,
			Schema:      districtDetailsSchema,
			Temperature: utils.Float32(0.4),
			Prepare:     prepareDistrictRequest,
			Render: func(in request_models.DistrictDetailsRequest) (utils.GenerateRequest, error) {
				prompt, err := prompts.DistrictDetails(in.DistrictName)
				return utils.GenerateRequest{Prompt: prompt}, err
			},
			Repair: func(in request_models.DistrictDetailsRequest, out *response_models.DistrictDetailsResponse) {
				// The model sometimes rewrites the name.
				out.Name = in.DistrictName
				out.Tagline = strings.TrimSpace(out.Tagline)
				out.Attractions = flow.TrimList(out.Attractions)
				out.Accommodations = flow.TrimList(out.Accommodations)
				out.Activities = flow.TrimList(out.Activities)
				out.Food = flow.TrimList(out.Food)
			},
		},
	}
}

// DistrictImageError carries the district name alongside the image failure.
type DistrictImageError struct {
	District string
	Err      error
}

func (e *DistrictImageError) Error() string {
	return fmt.Sprintf("Failed to generate image for %s. Reason: %v", e.District, e.Err)
}

func (e *DistrictImageError) Unwrap() error { return e.Err }

func (s *DistrictService) GetDistrictDetails(ctx context.Context, req request_models.DistrictDetailsRequest) (*response_models.DistrictDetailsResponse, error) {
	if err := s.details.Validate(&req); err != nil {
		return nil, err
	}
	return mem.Remember(s.cache, FlowDistrictDetails, req, func() (*response_models.DistrictDetailsResponse, error) {
		return s.details.Run(ctx, s.runner, req)
	})
}

func (s *DistrictService) GenerateDistrictImage(ctx context.Context, req request_models.DistrictImageRequest) (*response_models.DistrictImageResponse, error) {
	if err := prepareDistrictRequest(&req); err != nil {
		return nil, err
	}
	if err := flow.ValidateInput(&req); err != nil {
		return nil, err
	}

	return mem.Remember(s.cache, FlowDistrictImage, req, func() (*response_models.DistrictImageResponse, error) {
		prompt, err := prompts.DistrictImage(req.DistrictName)
		if err != nil {
			return nil, err
		}

		img, err := s.runner.Image(ctx, FlowDistrictImage, prompt)
		if err != nil {
			if !errors.Is(err, utils.ErrImageGenerationUnsupported) {
				err = fmt.Errorf("%w: %w", utils.ErrAIServiceUnavailable, err)
			}
			return nil, &DistrictImageError{District: req.DistrictName, Err: err}
		}
		if len(img.Data) == 0 {
			return nil, &DistrictImageError{
				District: req.DistrictName,
				Err:      fmt.Errorf("%w: no image returned", utils.ErrUnexpectedBehaviorOfAI),
			}
		}
		return &response_models.DistrictImageResponse{ImageURL: img.DataURI()}, nil
	})
}

func (s *DistrictService) ExploreDistrict(ctx context.Context, req request_models.DistrictRequest) (*response_models.DistrictOverview, error) {
	details, err := s.GetDistrictDetails(ctx, req)
	if err != nil {
		return nil, err
	}

	overview := &response_models.DistrictOverview{Details: details}
	image, err := s.GenerateDistrictImage(ctx, request_models.DistrictImageRequest{DistrictName: details.Name})
	if err != nil {
		s.logger.Warn("District image unavailable", zap.String("district", details.Name), zap.Error(err))
		overview.ImageError = err.Error()
		return overview, nil
	}
	overview.ImageURL = image.ImageURL
	return overview, nil
}

// prepareDistrictRequest replaces the name with its catalog spelling.
func prepareDistrictRequest(in *request_models.DistrictRequest) error {
	name, err := canonicalDistrict(in.DistrictName)
	if err != nil {
		return err
	}
	in.DistrictName = name
	return nil
}

func canonicalDistrict(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil
	}
	canonical, ok := catalog.LookupDistrict(name)
	if !ok {
		return "", fmt.Errorf("%w: %w: %q", utils.ErrInvalidInput, utils.ErrUnknownDistrict, name)
	}
	return canonical, nil
}

var districtDetailsSchema = &utils.Schema{
	Type:     utils.SchemaObject,
	Order:    []string{"name", "tagline", "attractions", "accommodations", "activities", "food"},
	Required: []string{"name", "tagline", "attractions", "accommodations", "activities", "food"},
	Properties: map[string]*utils.Schema{
		"name":           {Type: utils.SchemaString, Description: "The district name."},
		"tagline":        {Type: utils.SchemaString, Description: "A short, catchy tagline."},
		"attractions":    stringList("3-5 top attractions."),
		"accommodations": stringList("2-4 kinds of accommodation."),
		"activities":     stringList("3-5 popular activities or festivals."),
		"food":           stringList("2-4 local dishes."),
	},
}

func stringList(description string) *utils.Schema {
	return &utils.Schema{
		Type:        utils.SchemaArray,
		Description: description,
		Items:       &utils.Schema{Type: utils.SchemaString},
	}
}
