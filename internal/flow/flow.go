// Package flow runs prompt flows: validate a typed request, render a prompt,
// make one model call and decode the reply into a typed, validated result.
package flow

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"visitnepal/pkg/utils"
)

// Flow describes one prompt flow. Only Name, Schema and Render are required.
type Flow[In any, Out any] struct {
	Name         string
	Schema       *utils.Schema
	Temperature  *float32
	StrictSafety bool

	// Prepare normalizes the request in place and enforces rules that struct
	// tags cannot express. It runs before tag validation.
	Prepare func(in *In) error
	// Render builds the prompt (and inline images) from a validated request.
	Render func(in In) (utils.GenerateRequest, error)
	// Repair adjusts a decoded result before it is validated, e.g. echoing
	// input fields back or truncating over-long lists.
	Repair func(in In, out *Out)
	// Check validates the result against the request.
	Check func(in In, out *Out) error
}

// Runner executes flows against one LLM client.
type Runner struct {
	client  utils.LLMClient
	logger  *zap.Logger
	timeout time.Duration
}

func NewRunner(client utils.LLMClient, logger *zap.Logger, timeout time.Duration) *Runner {
	return &Runner{client: client, logger: logger, timeout: timeout}
}

func (r *Runner) Provider() string { return r.client.Name() }

// Validate normalizes and validates the request without calling the model.
func (f *Flow[In, Out]) Validate(in *In) error {
	if f.Prepare != nil {
		if err := f.Prepare(in); err != nil {
			return err
		}
	}
	return ValidateInput(in)
}

// Run executes the flow once. Input errors wrap utils.ErrInvalidInput and are
// returned before any model call; provider failures wrap
// utils.ErrAIServiceUnavailable; undecodable or invalid output wraps
// utils.ErrUnexpectedBehaviorOfAI.
func (f *Flow[In, Out]) Run(ctx context.Context, r *Runner, in In) (*Out, error) {
	if err := f.Validate(&in); err != nil {
		return nil, err
	}

	req, err := f.Render(in)
	if err != nil {
		return nil, fmt.Errorf("%s flow: render prompt: %w", f.Name, err)
	}
	req.Flow = f.Name
	req.Schema = f.Schema
	req.Temperature = f.Temperature
	req.StrictSafety = f.StrictSafety

	log := r.logger.With(zap.String("flow", f.Name), zap.String("provider", r.client.Name()))
	log.Debug("Calling model", zap.Int("prompt_chars", len(req.Prompt)), zap.Int("images", len(req.Images)))

	resp, err := r.generate(ctx, req)
	if err != nil {
		log.Error("Model call failed", zap.Error(err))
		return nil, fmt.Errorf("%s flow: %w: %w", f.Name, utils.ErrAIServiceUnavailable, err)
	}
	log.Info("Model call completed", zap.String("model", resp.Model), zap.Duration("took", resp.Duration))

	var out Out
	raw := utils.CleanJSONResponse(resp.Text)
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Warn("Response is not valid JSON", zap.String("raw", truncate(resp.Text, 500)), zap.Error(err))
		return nil, fmt.Errorf("%s flow: %w: decode response: %v", f.Name, utils.ErrUnexpectedBehaviorOfAI, err)
	}

	if f.Repair != nil {
		f.Repair(in, &out)
	}
	if err := ValidateOutput(&out); err != nil {
		log.Warn("Response does not match schema", zap.Error(err))
		return nil, fmt.Errorf("%s flow: %w: %v", f.Name, utils.ErrUnexpectedBehaviorOfAI, err)
	}
	if f.Check != nil {
		if err := f.Check(in, &out); err != nil {
			log.Warn("Response failed checks", zap.Error(err))
			return nil, fmt.Errorf("%s flow: %w: %v", f.Name, utils.ErrUnexpectedBehaviorOfAI, err)
		}
	}

	return &out, nil
}

// Image asks the provider for one generated image.
func (r *Runner) Image(ctx context.Context, name, prompt string) (*utils.GeneratedImage, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	started := time.Now()
	img, err := r.client.GenerateImage(ctx, prompt)
	if err != nil {
		r.logger.Error("Image generation failed",
			zap.String("flow", name), zap.String("provider", r.client.Name()), zap.Error(err))
		return nil, err
	}
	r.logger.Info("Image generated",
		zap.String("flow", name),
		zap.String("mime", img.MIMEType),
		zap.Int("bytes", len(img.Data)),
		zap.Duration("took", time.Since(started)))
	return img, nil
}

func (r *Runner) generate(ctx context.Context, req utils.GenerateRequest) (*utils.GenerateResponse, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.client.Generate(ctx, req)
}

func (r *Runner) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout > 0 {
		return context.WithTimeout(ctx, r.timeout)
	}
	return ctx, func() {}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
