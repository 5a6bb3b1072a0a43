package statsservice

import (
	"bytes"
	"slices"

	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette holds the colors used when rendering charts.
type ChartPalette struct {
	Background  drawing.Color
	PrimaryLine drawing.Color
	AccentLine  drawing.Color
	ParLine     drawing.Color
	TextColor   drawing.Color
}

// DefaultPalette is a dark fairway theme.
var DefaultPalette = ChartPalette{
	Background:  drawing.ColorFromHex("0f1f17"),
	PrimaryLine: drawing.ColorFromHex("4caf50"),
	AccentLine:  drawing.ColorFromHex("d4af37"),
	ParLine:     drawing.ColorFromHex("8d9e93"),
	TextColor:   drawing.ColorFromHex("e8efe9"),
}

// RoundTotalsChart renders completed round totals in date order as a PNG line
// chart, with the course par for each round drawn alongside.
func RoundTotalsChart(cards []*scorecardtypes.Scorecard, palette ChartPalette) ([]byte, error) {
	rounds := RoundTotals(cards)
	if len(rounds) == 0 {
		return renderNoDataPlaceholder(palette)
	}

	xValues := make([]float64, len(rounds))
	totals := make([]float64, len(rounds))
	pars := make([]float64, len(rounds))
	ticks := make([]chart.Tick, len(rounds))
	for i, r := range rounds {
		xValues[i] = float64(i + 1)
		totals[i] = float64(r.Strokes)
		pars[i] = float64(r.Strokes - r.ToPar)
		ticks[i] = chart.Tick{Value: xValues[i], Label: r.PlayedOn.Format("2006-01-02")}
	}

	// Explicit ranges keep single-round and flat histories renderable.
	low := slices.Min(append(slices.Clone(totals), pars...)) - 3
	high := slices.Max(append(slices.Clone(totals), pars...)) + 3

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.XAxis{
			Name:  "Round",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(len(rounds) + 1)},
			Ticks: ticks,
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
		},
		YAxis: chart.YAxis{
			Name:  "Strokes",
			Range: &chart.ContinuousRange{Min: low, Max: high},
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Par",
				XValues: xValues,
				YValues: pars,
				Style: chart.Style{
					StrokeColor:     palette.ParLine,
					StrokeWidth:     1,
					StrokeDashArray: []float64{5, 5},
				},
			},
			chart.ContinuousSeries{
				Name:    "Total",
				XValues: xValues,
				YValues: totals,
				Style: chart.Style{
					StrokeColor: palette.PrimaryLine,
					StrokeWidth: 2,
					DotWidth:    4,
					DotColor:    palette.AccentLine,
				},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// renderNoDataPlaceholder draws the message straight onto a PNG renderer;
// chart.Chart refuses to render without a series.
func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "No completed rounds"
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}
	r.SetFillColor(palette.Background)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}
	r.SetFont(font)
	r.SetFontColor(palette.TextColor)
	r.SetFontSize(12.0)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
