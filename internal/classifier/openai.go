package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/responses"

	"github.com/alexanderramin/mindguard/internal/domain"
)

// openaiClient implements Classifier through the OpenAI Responses API
// with a structured-output schema, for setups without a local inference
// server. The model is asked for one score per configured label; scores
// are renormalized to sum 1.0 before being returned.
type openaiClient struct {
	cfg      Config
	client   openai.Client
	observer Observer
}

// NewOpenAIClient creates a Classifier backed by the OpenAI API. The API
// key is read from the environment by the underlying client.
func NewOpenAIClient(cfg Config, observer Observer) Classifier {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &openaiClient{
		cfg:      cfg,
		client:   openai.NewClient(),
		observer: observer,
	}
}

// emotionScoresPayload is the structured output contract for the model.
type emotionScoresPayload struct {
	Scores []struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	} `json:"scores"`
}

var emotionScoresSchema = generateSchema[emotionScoresPayload]()

const classifyInstructions = `You are an emotion classification model. ` +
	`Score the user's text across the given emotion labels. Return one entry ` +
	`per label, ordered from highest to lowest score. Scores are probabilities ` +
	`in [0,1] and must sum to 1.`

func (c *openaiClient) Classify(ctx context.Context, text string) ([]domain.EmotionScore, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	format := responses.ResponseFormatTextConfigUnionParam{
		OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
			Name:        "EmotionScores",
			Schema:      emotionScoresSchema,
			Strict:      openai.Bool(true),
			Description: openai.String("Per-label emotion scores"),
			Type:        "json_schema",
		},
	}

	input := fmt.Sprintf("Labels: %s\n\nText:\n%s", strings.Join(c.cfg.Labels, ", "), text)

	params := responses.ResponseNewParams{
		Model:           c.cfg.Model,
		MaxOutputTokens: openai.Int(512),
		Instructions:    openai.String(classifyInstructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(input, responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: format,
		},
	}

	resp, err := c.client.Responses.New(ctx, params)
	if err != nil {
		c.observer.OnCallComplete(CallEvent{
			Backend:   BackendOpenAI,
			Model:     c.cfg.Model,
			LatencyMs: time.Since(start).Milliseconds(),
			Success:   false,
			ErrorCode: "UNAVAILABLE",
		})
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	scores, err := c.parsePayload(resp.OutputText())
	c.observer.OnCallComplete(CallEvent{
		Backend:   BackendOpenAI,
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
	return scores, err
}

func (c *openaiClient) parsePayload(raw string) ([]domain.EmotionScore, error) {
	var payload emotionScoresPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if len(payload.Scores) == 0 {
		return nil, fmt.Errorf("%w: empty score list", ErrInvalidOutput)
	}

	scores := make([]domain.EmotionScore, 0, len(payload.Scores))
	var sum float64
	for _, s := range payload.Scores {
		if s.Label == "" {
			return nil, fmt.Errorf("%w: score with empty label", ErrInvalidOutput)
		}
		if s.Score < 0 {
			return nil, fmt.Errorf("%w: negative score for %q", ErrInvalidOutput, s.Label)
		}
		scores = append(scores, domain.EmotionScore{
			Label: strings.ToLower(s.Label),
			Score: s.Score,
		})
		sum += s.Score
	}

	// The schema asks for probabilities summing to 1 but models drift;
	// renormalize so downstream formulas see confidence in [0,1].
	if sum > 0 {
		for i := range scores {
			scores[i].Score /= sum
		}
	}

	return scores, nil
}

func (c *openaiClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	_, err := c.client.Models.Get(ctx, c.cfg.Model)
	return err == nil
}

// generateSchema reflects a Go type into an OpenAI-compatible JSON schema:
// additionalProperties disabled and every property required, as the
// structured-output API demands.
func generateSchema[T any]() map[string]any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	schema := reflector.Reflect(v)

	b, err := schema.MarshalJSON()
	if err != nil {
		panic(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		panic(err)
	}
	ensureRequired(m)
	return m
}

func ensureRequired(schema map[string]any) {
	if t, ok := schema["type"].(string); ok && t == "object" {
		schema["additionalProperties"] = false
		if props, ok := schema["properties"].(map[string]any); ok {
			var required []string
			for name := range props {
				required = append(required, name)
			}
			if len(required) > 0 {
				schema["required"] = required
			}
		}
	}
	if props, ok := schema["properties"].(map[string]any); ok {
		for _, p := range props {
			if pm, ok := p.(map[string]any); ok {
				ensureRequired(pm)
			}
		}
	}
	if items, ok := schema["items"].(map[string]any); ok {
		ensureRequired(items)
	}
}
