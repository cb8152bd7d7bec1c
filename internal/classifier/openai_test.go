package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAIClient() *openaiClient {
	return &openaiClient{cfg: DefaultConfig(), observer: NoopObserver{}}
}

func TestParsePayload_Renormalizes(t *testing.T) {
	c := newTestOpenAIClient()

	raw := `{"scores":[{"label":"Sadness","score":0.6},{"label":"joy","score":0.2}]}`
	scores, err := c.parsePayload(raw)
	require.NoError(t, err)

	require.Len(t, scores, 2)
	assert.Equal(t, "sadness", scores[0].Label)
	assert.InDelta(t, 0.75, scores[0].Score, 1e-9)
	assert.InDelta(t, 0.25, scores[1].Score, 1e-9)
}

func TestParsePayload_Invalid(t *testing.T) {
	c := newTestOpenAIClient()

	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "sorry, I cannot classify that"},
		{"empty score list", `{"scores":[]}`},
		{"empty label", `{"scores":[{"label":"","score":1}]}`},
		{"negative score", `{"scores":[{"label":"joy","score":-0.2}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.parsePayload(tt.raw)
			assert.ErrorIs(t, err, ErrInvalidOutput)
		})
	}
}

func TestEmotionScoresSchema(t *testing.T) {
	schema := emotionScoresSchema

	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, false, schema["additionalProperties"])
	assert.Equal(t, []string{"scores"}, schema["required"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	scoresProp, ok := props["scores"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "array", scoresProp["type"])

	items, ok := scoresProp["items"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, items["additionalProperties"])
	assert.ElementsMatch(t, []string{"label", "score"}, items["required"])
}
