package table

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// formatter renders table numbers the way an en-US reader expects them.
// A message.Printer is not shared between goroutines, so each render gets one.
type formatter struct {
	p *message.Printer
}

func newFormatter() formatter {
	return formatter{p: message.NewPrinter(language.AmericanEnglish)}
}

// score formats sentiment scores and confidence intervals: 3 decimals.
func (f formatter) score(v float64) string {
	return f.p.Sprintf("%.3f", v)
}

// count formats an observation count with thousands separators.
func (f formatter) count(v int) string {
	return f.p.Sprintf("%d", v)
}

// percent formats a ratio in [0,1] as a percentage with 1 decimal.
func (f formatter) percent(v float64) string {
	return f.p.Sprintf("%.1f%%", v*100)
}
