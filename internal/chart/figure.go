package chart

import (
	"fmt"
	"slices"

	"github.com/pscheid92/emojiboard/internal/domain"
)

const (
	baseHeight        = 200
	heightPerCategory = 28

	boxFill   = "rgba(72, 104, 255, 0.35)"
	boxStroke = "rgba(72, 104, 255, 0.9)"
	meanColor = "rgba(72, 104, 255, 1)"
)

// Figure is a Plotly figure: data traces, layout and config.
type Figure struct {
	Data   []BoxTrace `json:"data"`
	Layout Layout     `json:"layout"`
	Config Config     `json:"config"`
}

type BoxTrace struct {
	Type           string   `json:"type"`
	Orientation    string   `json:"orientation"`
	X              []int    `json:"x"`
	Y              []string `json:"y"`
	Marker         Marker   `json:"marker"`
	Line           Line     `json:"line"`
	HoverTemplate  string   `json:"hovertemplate"`
	BoxPoints      string   `json:"boxpoints"`
	Jitter         float64  `json:"jitter"`
	WhiskerWidth   float64  `json:"whiskerwidth"`
	QuartileMethod string   `json:"quartilemethod"`
	MeanLine       MeanLine `json:"meanline"`
	BoxMean        bool     `json:"boxmean"`
}

type Marker struct {
	Color string `json:"color"`
}

type Line struct {
	Color string `json:"color"`
}

type MeanLine struct {
	Visible bool    `json:"visible"`
	Width   float64 `json:"width"`
	Color   string  `json:"color"`
}

type Layout struct {
	Title        Title  `json:"title"`
	Margin       Margin `json:"margin"`
	XAxis        XAxis  `json:"xaxis"`
	YAxis        YAxis  `json:"yaxis"`
	Height       int    `json:"height"`
	PaperBGColor string `json:"paper_bgcolor"`
	PlotBGColor  string `json:"plot_bgcolor"`
}

type Title struct {
	Text string `json:"text"`
	Font Font   `json:"font"`
}

type Font struct {
	Size int `json:"size"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

type XAxis struct {
	Side     string     `json:"side"`
	TickMode string     `json:"tickmode"`
	TickVals []int      `json:"tickvals"`
	TickText []string   `json:"ticktext"`
	Range    [2]float64 `json:"range"`
}

type YAxis struct {
	CategoryOrder string   `json:"categoryorder"`
	CategoryArray []string `json:"categoryarray"`
	AutoMargin    bool     `json:"automargin"`
	AutoRange     string   `json:"autorange"`
}

type Config struct {
	Responsive bool `json:"responsive"`
}

// CategoryOrder lists emoji glyphs by descending summary count. Ties keep the
// summary order.
func CategoryOrder(summary []domain.SummaryRecord) []string {
	sorted := slices.Clone(summary)
	slices.SortStableFunc(sorted, func(a, b domain.SummaryRecord) int {
		return b.Count - a.Count
	})

	order := make([]string, len(sorted))
	for i, r := range sorted {
		order[i] = r.Emoji
	}
	return order
}

// Height is the chart height in pixels for n categories.
func Height(n int) int {
	return baseHeight + n*heightPerCategory
}

// TickValues are the scale positions 1..7.
func TickValues() []int {
	vals := make([]int, domain.MaxScore)
	for i := range vals {
		vals[i] = i + domain.MinScore
	}
	return vals
}

// TickLabels are the axis labels for TickValues, e.g. "1 · Very negative".
func TickLabels() []string {
	labels := make([]string, domain.MaxScore)
	for i, name := range domain.ScaleLabels {
		labels[i] = fmt.Sprintf("%d · %s", i+domain.MinScore, name)
	}
	return labels
}

// Build maps the datasets to the boxplot figure. Quartiles are left to the
// browser library, configured for the inclusive method.
func Build(summary []domain.SummaryRecord, expanded []domain.ExpandedSample) Figure {
	order := CategoryOrder(summary)

	xs := make([]int, len(expanded))
	ys := make([]string, len(expanded))
	for i, s := range expanded {
		xs[i] = s.Score
		ys[i] = s.Emoji
	}

	trace := BoxTrace{
		Type:           "box",
		Orientation:    "h",
		X:              xs,
		Y:              ys,
		Marker:         Marker{Color: boxFill},
		Line:           Line{Color: boxStroke},
		HoverTemplate:  "%{y}: score %{x}<extra></extra>",
		BoxPoints:      "outliers",
		Jitter:         0,
		WhiskerWidth:   0.4,
		QuartileMethod: "inclusive",
		MeanLine:       MeanLine{Visible: true, Width: 2, Color: meanColor},
		BoxMean:        true,
	}

	layout := Layout{
		Title:  Title{Text: "Emoji Sentiment Boxplot", Font: Font{Size: 20}},
		Margin: Margin{L: 140, R: 20, T: 60, B: 60},
		XAxis: XAxis{
			Side:     "top",
			TickMode: "array",
			TickVals: TickValues(),
			TickText: TickLabels(),
			Range:    [2]float64{domain.MinScore - 0.5, domain.MaxScore + 0.5},
		},
		YAxis: YAxis{
			CategoryOrder: "array",
			CategoryArray: order,
			AutoMargin:    true,
			AutoRange:     "reversed",
		},
		Height:       Height(len(order)),
		PaperBGColor: "#ffffff",
		PlotBGColor:  "#ffffff",
	}

	return Figure{
		Data:   []BoxTrace{trace},
		Layout: layout,
		Config: Config{Responsive: true},
	}
}
