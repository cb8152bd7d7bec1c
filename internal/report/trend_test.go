package report

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/mindguard/internal/domain"
)

func entriesWithRisks(risks ...int) []*domain.ReflectionEntry {
	entries := make([]*domain.ReflectionEntry, len(risks))
	for i, r := range risks {
		entries[i] = &domain.ReflectionEntry{Seq: i, Text: "entry", RiskScore: r}
	}
	return entries
}

func TestRenderTrendPNG(t *testing.T) {
	data, err := RenderTrendPNG(entriesWithRisks(0, 5, 10, 3))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err, "output decodes as PNG")
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestRenderTrendPNG_SingleEntry(t *testing.T) {
	data, err := RenderTrendPNG(entriesWithRisks(7))
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
}

func TestRenderTrendPNG_Empty(t *testing.T) {
	_, err := RenderTrendPNG(nil)
	assert.ErrorIs(t, err, ErrEmptyJournal)
}

func TestRenderTrendPNG_Deterministic(t *testing.T) {
	first, err := RenderTrendPNG(entriesWithRisks(1, 2, 3))
	require.NoError(t, err)
	second, err := RenderTrendPNG(entriesWithRisks(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
