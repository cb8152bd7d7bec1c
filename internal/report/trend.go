package report

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/alexanderramin/mindguard/internal/domain"
)

var trendColor = drawing.ColorFromHex("800080")

// RenderTrendPNG plots risk score against 0-based entry index as a
// connected line with point markers, y fixed to [0,10]. The chart is
// rebuilt from the full journal on every call, never incrementally.
func RenderTrendPNG(entries []*domain.ReflectionEntry) ([]byte, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyJournal
	}

	xs := make([]float64, len(entries))
	ys := make([]float64, len(entries))
	for i, e := range entries {
		xs[i] = float64(i)
		ys[i] = float64(e.RiskScore)
	}

	// A single entry gives a zero-width x range, which go-chart rejects;
	// pin the axis to at least [0,1].
	xMax := float64(len(entries) - 1)
	if xMax < 1 {
		xMax = 1
	}

	graph := chart.Chart{
		Width:  800,
		Height: 300,
		XAxis: chart.XAxis{
			Name:  "Entries",
			Range: &chart.ContinuousRange{Min: 0, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  "Risk Level",
			Range: &chart.ContinuousRange{Min: 0, Max: 10},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: trendColor,
					StrokeWidth: 2.0,
					DotColor:    trendColor,
					DotWidth:    4.0,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderChart, err)
	}
	return buf.Bytes(), nil
}
