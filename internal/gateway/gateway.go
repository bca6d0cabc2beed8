// Package gateway wraps the hosted generative model behind three study
// helpers: syllabus generation, flashcard generation and doubt solving.
//
// None of the helpers return errors. Any failure (network, quota, malformed
// payload) is logged and degrades to an empty result or a fixed apology, so
// callers can hand the result straight to the user.
package gateway

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Model is the subset of the GenAI client used by the gateway.
// *genai.Models satisfies it.
type Model interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Options configures a Gateway.
type Options struct {
	// Model is the model name; DefaultModel if empty.
	Model string

	// Timeout bounds each call. Zero means no deadline beyond the caller's context.
	Timeout time.Duration

	// Registerer receives the gateway metrics. Nil leaves them unregistered.
	Registerer prometheus.Registerer
}

// Gateway issues requests to the generative model.
type Gateway struct {
	model   Model
	name    string
	timeout time.Duration
	metrics *metrics
}

// New creates a Gateway backed by the Gemini API.
//
// If the client cannot be created (e.g. no API key) the gateway is still
// returned: every call then fails and degrades like any other failure.
func New(ctx context.Context, apiKey string, opts Options) *Gateway {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		slog.Warn("GenAI client unavailable, AI features will return fallbacks", "error", err)
		return NewWithModel(unavailable{err: err}, opts)
	}
	return NewWithModel(client.Models, opts)
}

// NewWithModel creates a Gateway over an existing Model.
func NewWithModel(m Model, opts Options) *Gateway {
	name := opts.Model
	if name == "" {
		name = DefaultModel
	}
	return &Gateway{
		model:   m,
		name:    name,
		timeout: opts.Timeout,
		metrics: newMetrics(opts.Registerer),
	}
}

// generate runs one request and returns the response text.
func (g *Gateway) generate(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.model.GenerateContent(ctx, g.name, contents, config)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", errEmptyResponse
	}
	slog.Debug("GenAI response received", "model", g.name, "duration_ms", time.Since(start).Milliseconds())
	return resp.Text(), nil
}

var errEmptyResponse = errors.New("empty response from model")

// unavailable is the Model used when no client could be created.
type unavailable struct{ err error }

func (u unavailable) GenerateContent(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return nil, u.err
}
