// Package chart maps the expanded sample dataset to the sentiment boxplot.
//
// Build produces the Plotly figure the page draws in the browser. Stats computes
// the same box summaries on the server, which RenderPNG uses for the static image.
// Nothing here holds state; callers build a figure once and keep it.
package chart
