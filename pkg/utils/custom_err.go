package utils

import "errors"

var (
	ErrInvalidInput               = errors.New("invalid input")
	ErrUnknownDistrict            = errors.New("unknown district")
	ErrUnexpectedBehaviorOfAI     = errors.New("unexpected response from AI service")
	ErrAIServiceUnavailable       = errors.New("AI service call failed")
	ErrImageGenerationUnsupported = errors.New("image generation is not supported by the configured provider")
	ErrUnsupportedProvider        = errors.New("unsupported LLM provider")
)
