// Package plot describes sampled expressions as line charts for the front end.
package plot

import (
	"gonum.org/v1/gonum/floats"

	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/evaluator"
	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/expr"
)

// Palette holds the chart colors for one display mode
type Palette struct {
	Line string `json:"line"`
	Grid string `json:"grid"`
	Text string `json:"text"`
}

var (
	lightPalette = Palette{Line: "blue", Grid: "#ccc", Text: "#222"}
	darkPalette  = Palette{Line: "#4FC3F7", Grid: "#555", Text: "#f1f1f1"}
)

// PaletteFor returns the colors for the dark or light display
func PaletteFor(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

// Chart is a line chart of one expression
type Chart struct {
	Type    string    `json:"type"`
	Labels  []float64 `json:"labels"`
	Dataset Dataset   `json:"dataset"`
	XAxis   Axis      `json:"x_axis"`
	YAxis   Axis      `json:"y_axis"`
	Legend  string    `json:"legend_color"`
	YRange  *Range    `json:"y_range,omitempty"`
	Gaps    int       `json:"gaps"`
}

// Dataset is the plotted series; nil entries are gaps
type Dataset struct {
	Label       string     `json:"label"`
	Data        []*float64 `json:"data"`
	BorderColor string     `json:"border_color"`
	BorderWidth int        `json:"border_width"`
	PointRadius int        `json:"point_radius"`
	Fill        bool       `json:"fill"`
}

// Axis describes one chart axis
type Axis struct {
	Title     string `json:"title"`
	TextColor string `json:"text_color"`
	GridColor string `json:"grid_color"`
}

// Range is the finite extent of the series
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Build creates the chart for points sampled from expression
func Build(expression string, unit expr.Unit, dark bool, points []evaluator.Point) Chart {
	palette := PaletteFor(dark)

	labels := make([]float64, len(points))
	data := make([]*float64, len(points))
	finite := make([]float64, 0, len(points))
	for i, p := range points {
		labels[i] = p.X
		if !p.Defined() {
			continue
		}
		y := p.Y
		data[i] = &y
		finite = append(finite, y)
	}

	chart := Chart{
		Type:   "line",
		Labels: labels,
		Dataset: Dataset{
			Label:       expression,
			Data:        data,
			BorderColor: palette.Line,
			BorderWidth: 2,
			PointRadius: 0,
			Fill:        false,
		},
		XAxis:  Axis{Title: unit.Label(), TextColor: palette.Text, GridColor: palette.Grid},
		YAxis:  Axis{Title: "y", TextColor: palette.Text, GridColor: palette.Grid},
		Legend: palette.Text,
		Gaps:   len(points) - len(finite),
	}
	if len(finite) > 0 {
		chart.YRange = &Range{Min: floats.Min(finite), Max: floats.Max(finite)}
	}
	return chart
}
