package plangen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/gymplan/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/genai"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=plangen_test

type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Generator requests a structured monthly plan from Gemini. The response is
// requested as JSON and validated before being handed downstream; a response
// that does not parse is fatal to the run. One attempt per run, no retries.
type Generator struct {
	models contentGenerator
	model  string
}

func NewGenerator(ctx context.Context, apiKey, model string) (*Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Generator{
		models: client.Models,
		model:  model,
	}, nil
}

// NewGeneratorWithModels wires an already built content generator, used in tests.
func NewGeneratorWithModels(models contentGenerator, model string) *Generator {
	return &Generator{
		models: models,
		model:  model,
	}
}

func (g *Generator) GeneratePlan(ctx context.Context, prompt string) (_ json.RawMessage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "plangen.generatePlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("model", g.model),
		attribute.Int("prompt_len", len(prompt)),
	)

	log.Debugf("requesting plan from %s, prompt length: %d", g.model, len(prompt))

	resp, err := g.models.GenerateContent(
		ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("generation response is empty")
	}
	if !json.Valid([]byte(text)) {
		return nil, fmt.Errorf("generation response is not valid json: %.200s", text)
	}

	return json.RawMessage(text), nil
}
