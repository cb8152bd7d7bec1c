package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/alexanderramin/mindguard/internal/domain"
)

// Classifier scores a text across the fixed emotion label set. The
// returned slice is ranked in the backend's output order, which is
// authoritative for tie-breaking; scores sum to approximately 1.0.
type Classifier interface {
	Classify(ctx context.Context, text string) ([]domain.EmotionScore, error)

	// Available checks whether the inference backend is reachable.
	Available(ctx context.Context) bool
}

// New constructs the Classifier selected by cfg.Backend. The client is
// meant to be built once per process and shared read-only across all
// analyze calls.
func New(cfg Config, observer Observer) Classifier {
	if cfg.Backend == BackendOpenAI {
		return NewOpenAIClient(cfg, observer)
	}
	return NewLocalClient(cfg, observer)
}

// localClient implements Classifier against a local text-classification
// inference server speaking the HuggingFace pipeline API: a POST of
// {"inputs": text} answered with [[{"label": ..., "score": ...}, ...]].
type localClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewLocalClient creates a Classifier that talks to a local inference server.
func NewLocalClient(cfg Config, observer Observer) Classifier {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &localClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// classifyRequest is the JSON body sent to the inference server.
type classifyRequest struct {
	Inputs string `json:"inputs"`
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (c *localClient) Classify(ctx context.Context, text string) ([]domain.EmotionScore, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		scores, err := c.doRequest(ctx, text)
		if err == nil {
			c.observer.OnCallComplete(CallEvent{
				Backend:   BackendLocal,
				Model:     c.cfg.Model,
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return scores, nil
		}
		lastErr = err

		// Malformed output will not improve on retry.
		if errors.Is(err, ErrInvalidOutput) {
			break
		}
		// Don't retry on context cancellation/timeout.
		if ctx.Err() != nil {
			break
		}
	}

	c.observer.OnCallComplete(CallEvent{
		Backend:   BackendLocal,
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(lastErr),
	})

	if ctx.Err() != nil {
		return nil, ErrTimeout
	}
	if errors.Is(lastErr, ErrInvalidOutput) {
		return nil, lastErr
	}
	if isConnectionError(lastErr) {
		return nil, ErrUnavailable
	}
	return nil, fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func (c *localClient) doRequest(ctx context.Context, text string) ([]domain.EmotionScore, error) {
	data, err := json.Marshal(classifyRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference server returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	return parseScores(respBody)
}

// parseScores decodes the pipeline response. The server wraps the ranked
// list in an outer array (one element per input); some servers return the
// flat form, so both shapes are accepted.
func parseScores(body []byte) ([]domain.EmotionScore, error) {
	var nested [][]labelScore
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 {
		return toEmotionScores(nested[0])
	}

	var flat []labelScore
	if err := json.Unmarshal(body, &flat); err == nil {
		return toEmotionScores(flat)
	}

	return nil, fmt.Errorf("%w: unrecognized response shape", ErrInvalidOutput)
}

func toEmotionScores(raw []labelScore) ([]domain.EmotionScore, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty score list", ErrInvalidOutput)
	}
	scores := make([]domain.EmotionScore, 0, len(raw))
	for _, ls := range raw {
		if ls.Label == "" {
			return nil, fmt.Errorf("%w: score with empty label", ErrInvalidOutput)
		}
		scores = append(scores, domain.EmotionScore{
			Label: strings.ToLower(ls.Label),
			Score: ls.Score,
		})
	}
	return scores, nil
}

func (c *localClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
