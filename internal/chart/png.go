package chart

import (
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	pngWidth     = 1000
	pngMarginL   = 180
	pngMarginR   = 30
	pngPlotTop   = 110
	pngBoxHeight = 14
)

var (
	pngBoxFill   = drawing.Color{R: 72, G: 104, B: 255, A: 90}
	pngBoxStroke = drawing.Color{R: 72, G: 104, B: 255, A: 230}
	pngMean      = drawing.Color{R: 72, G: 104, B: 255, A: 255}
	pngGrid      = drawing.Color{R: 225, G: 228, B: 235, A: 255}
	pngText      = drawing.Color{R: 40, G: 44, B: 52, A: 255}
)

// RenderPNG draws the horizontal boxplot for stats as a PNG image. Categories
// are drawn top to bottom in the given order; the image height follows Height.
func RenderPNG(w io.Writer, stats []BoxStats) error {
	height := Height(len(stats))

	r, err := gochart.PNG(pngWidth, height)
	if err != nil {
		return fmt.Errorf("failed to create png renderer: %w", err)
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("failed to load default font: %w", err)
	}
	r.SetFont(font)

	p := plot{r: r, left: pngMarginL, right: pngWidth - pngMarginR}

	p.rect(0, 0, pngWidth, height, drawing.ColorWhite, drawing.ColorWhite)

	r.SetFontColor(pngText)
	r.SetFontSize(16)
	r.Text("Emoji Sentiment Boxplot", pngMarginL, 32)

	p.axis(height)

	for i, b := range stats {
		center := pngPlotTop + i*heightPerCategory + heightPerCategory/2
		p.label(b, center)
		if b.N > 0 {
			p.box(b, center)
		}
	}

	if err := r.Save(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

type plot struct {
	r     gochart.Renderer
	left  int
	right int
}

// x maps a score on the 1-7 scale to a pixel column; the axis spans 0.5..7.5.
func (p plot) x(score float64) int {
	const lo, hi = 0.5, 7.5
	return p.left + int((score-lo)/(hi-lo)*float64(p.right-p.left))
}

func (p plot) line(x1, y1, x2, y2 int, color drawing.Color, width float64) {
	p.r.SetStrokeColor(color)
	p.r.SetStrokeWidth(width)
	p.r.MoveTo(x1, y1)
	p.r.LineTo(x2, y2)
	p.r.Stroke()
}

func (p plot) rect(x1, y1, x2, y2 int, fill, stroke drawing.Color) {
	p.r.SetFillColor(fill)
	p.r.SetStrokeColor(stroke)
	p.r.SetStrokeWidth(1)
	p.r.MoveTo(x1, y1)
	p.r.LineTo(x2, y1)
	p.r.LineTo(x2, y2)
	p.r.LineTo(x1, y2)
	p.r.Close()
	p.r.FillStroke()
}

func (p plot) axis(height int) {
	p.r.SetFontColor(pngText)
	p.r.SetFontSize(8)

	labels := TickLabels()
	for i, v := range TickValues() {
		x := p.x(float64(v))
		p.line(x, pngPlotTop-8, x, height-20, pngGrid, 1)

		// alternate label rows so long labels do not collide
		y := pngPlotTop - 36
		if i%2 == 1 {
			y = pngPlotTop - 20
		}
		tw := p.r.MeasureText(labels[i]).Width()
		p.r.Text(labels[i], x-tw/2, y)
	}
}

func (p plot) label(b BoxStats, center int) {
	text := b.Name
	if text == "" {
		text = b.Emoji
	}
	p.r.SetFontColor(pngText)
	p.r.SetFontSize(9)
	tw := p.r.MeasureText(text).Width()
	p.r.Text(text, p.left-tw-10, center+4)
}

func (p plot) box(b BoxStats, center int) {
	top := center - pngBoxHeight/2
	bottom := center + pngBoxHeight/2

	p.line(p.x(b.LowerWhisker), center, p.x(b.Q1), center, pngBoxStroke, 1)
	p.line(p.x(b.Q3), center, p.x(b.UpperWhisker), center, pngBoxStroke, 1)
	p.line(p.x(b.LowerWhisker), center-4, p.x(b.LowerWhisker), center+4, pngBoxStroke, 1)
	p.line(p.x(b.UpperWhisker), center-4, p.x(b.UpperWhisker), center+4, pngBoxStroke, 1)

	p.rect(p.x(b.Q1), top, p.x(b.Q3), bottom, pngBoxFill, pngBoxStroke)
	p.line(p.x(b.Median), top, p.x(b.Median), bottom, pngBoxStroke, 2)

	mx := p.x(b.Mean)
	p.line(mx, top, mx, bottom, pngMean, 2)

	for _, o := range b.Outliers {
		p.r.SetFillColor(pngBoxFill)
		p.r.SetStrokeColor(pngBoxStroke)
		p.r.SetStrokeWidth(1)
		p.r.Circle(2.5, p.x(o), center)
		p.r.FillStroke()
	}
}
