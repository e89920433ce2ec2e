package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

// PlotSeries renders one captioned line plot.
func PlotSeries(data []float64, caption string) string {
	return asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotTCF renders the real and imaginary parts of a correlation function
// as two stacked plots.
func PlotTCF(c []complex128, kind string) string {
	re := make([]float64, len(c))
	im := make([]float64, len(c))
	for i, v := range c {
		re[i] = real(v)
		im[i] = imag(v)
	}

	var b strings.Builder
	b.WriteString(PlotSeries(re, fmt.Sprintf("Re C(t) [%s]", kind)))
	b.WriteString("\n\n")
	b.WriteString(PlotSeries(im, fmt.Sprintf("Im C(t) [%s]", kind)))
	return b.String()
}

// PlotSpectrum renders spectral intensities against a frequency axis,
// annotating the dominant peak.
func PlotSpectrum(freqs, intens []float64, caption string) string {
	graph := PlotSeries(intens, caption)

	maxIdx := 0
	for k := range intens {
		if intens[k] > intens[maxIdx] {
			maxIdx = k
		}
	}

	var b strings.Builder
	b.WriteString(graph)
	if len(freqs) > 0 {
		b.WriteString(fmt.Sprintf("\npeak: %.4f (bin %d of %d)\n", freqs[maxIdx], maxIdx, len(freqs)))
	}
	return b.String()
}
