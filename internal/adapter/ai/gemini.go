// Package ai contains clients for the model providers behind the
// assistant.
package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/iho/fintrack/internal/infrastructure/metrics"
)

// Config carries the settings for the Gemini client.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Gemini wraps the Google GenAI client behind the single text-in,
// text-out call the assistant pipeline needs.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	metrics *metrics.Metrics
}

// NewGemini creates a Gemini-backed text generator.
func NewGemini(ctx context.Context, cfg Config, m *metrics.Metrics) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Gemini{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		metrics: m,
	}, nil
}

// Generate sends one prompt to the model and returns the reply text.
// Every call is bounded by the configured timeout.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	g.observe(time.Since(start), err)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}

func (g *Gemini) observe(elapsed time.Duration, err error) {
	if g.metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	g.metrics.ModelRequests.WithLabelValues(status).Inc()
	g.metrics.ModelDuration.Observe(elapsed.Seconds())
}
