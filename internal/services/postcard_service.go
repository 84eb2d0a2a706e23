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

const (
	FlowPostcardCaption = "postcard_caption"

	MaxPostcardImageBytes = 5 << 20
)

var postcardImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

type PostcardServiceInterface interface {
	GenerateCaption(ctx context.Context, req request_models.PostcardRequest) (*response_models.PostcardResponse, error)
	// GenerateCaptionFromUpload captions raw image bytes, e.g. from a multipart form.
	GenerateCaptionFromUpload(ctx context.Context, mimeType string, data []byte, location string, description *string) (*response_models.PostcardResponse, error)
}

type PostcardService struct {
	runner *flow.Runner
	flow   *flow.Flow[request_models.PostcardRequest, response_models.PostcardResponse]
}

func NewPostcardService(runner *flow.Runner) PostcardServiceInterface {
	return &PostcardService{
		runner: runner,
		flow: &flow.Flow[request_models.PostcardRequest, response_models.PostcardResponse]{
			Name:        FlowPostcardCaption,
			Schema:      postcardSchema,
			Temperature: utils.Float32(0.9),
			Prepare: func(in *request_models.PostcardRequest) error {
				in.ImageDataURI = strings.TrimSpace(in.ImageDataURI)
				in.Location = strings.TrimSpace(in.Location)
				in.Description = flow.OptionalText(in.Description)
				if in.ImageDataURI == "" {
					return nil
				}
				_, err := parsePostcardImage(in.ImageDataURI)
				return err
			},
			Render: func(in request_models.PostcardRequest) (utils.GenerateRequest, error) {
				img, err := parsePostcardImage(in.ImageDataURI)
				if err != nil {
					return utils.GenerateRequest{}, err
				}
				prompt, err := prompts.PostcardCaption(in.Location, in.Description)
				return utils.GenerateRequest{Prompt: prompt, Images: []utils.InlineImage{*img}}, err
			},
			Repair: func(_ request_models.PostcardRequest, out *response_models.PostcardResponse) {
				out.Caption = strings.TrimSpace(out.Caption)
			},
		},
	}
}

func (s *PostcardService) GenerateCaption(ctx context.Context, req request_models.PostcardRequest) (*response_models.PostcardResponse, error) {
	return s.flow.Run(ctx, s.runner, req)
}

func (s *PostcardService) GenerateCaptionFromUpload(ctx context.Context, mimeType string, data []byte, location string, description *string) (*response_models.PostcardResponse, error) {
	if len(data) == 0 {
		return nil, flow.Invalid("image is required")
	}
	return s.GenerateCaption(ctx, request_models.PostcardRequest{
		ImageDataURI: utils.EncodeDataURI(mimeType, data),
		Location:     location,
		Description:  description,
	})
}

func parsePostcardImage(uri string) (*utils.InlineImage, error) {
	img, err := utils.ParseDataURI(uri)
	if err != nil {
		return nil, err
	}
	if !postcardImageTypes[img.MIMEType] {
		return nil, flow.Invalid("image type %s is not supported, use JPEG, PNG or WebP", img.MIMEType)
	}
	if len(img.Data) > MaxPostcardImageBytes {
		return nil, flow.Invalid("image is larger than 5 MB")
	}
	return img, nil
}

var postcardSchema = &utils.Schema{
	Type:     utils.SchemaObject,
	Order:    []string{"caption"},
	Required: []string{"caption"},
	Properties: map[string]*utils.Schema{
		"caption": {Type: utils.SchemaString, Description: "A creative caption for the postcard."},
	},
}
