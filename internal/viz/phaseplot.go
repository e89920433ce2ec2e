package viz

import (
	"fmt"
	"strings"
)

const (
	scatterWidth  = 70
	scatterHeight = 20
)

// PhasePortrait renders a (q, p) scatter of a trajectory. Early, middle
// and late thirds use distinct marks so the flow direction is visible.
func PhasePortrait(q, p []float64) string {
	if len(q) == 0 || len(q) != len(p) {
		return "no data"
	}

	qMin, qMax := bounds(q)
	pMin, pMax := bounds(p)
	qRange := qMax - qMin
	pRange := pMax - pMin
	if qRange == 0 {
		qRange = 1
	}
	if pRange == 0 {
		pRange = 1
	}

	canvas := make([][]rune, scatterHeight)
	for i := range canvas {
		canvas[i] = make([]rune, scatterWidth)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i := range q {
		px := int(float64(scatterWidth-1) * (q[i] - qMin) / qRange)
		py := int(float64(scatterHeight-1) * (p[i] - pMin) / pRange)
		py = scatterHeight - 1 - py
		if px < 0 || px >= scatterWidth || py < 0 || py >= scatterHeight {
			continue
		}
		switch {
		case i < len(q)/3:
			canvas[py][px] = '.'
		case i < 2*len(q)/3:
			canvas[py][px] = 'o'
		default:
			canvas[py][px] = '●'
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %7.2f ┌%s┐\n", pMax, strings.Repeat("─", scatterWidth))
	for i := range canvas {
		if i == scatterHeight/2 {
			fmt.Fprintf(&b, "  %7.2f │", (pMax+pMin)/2)
		} else {
			b.WriteString("          │")
		}
		b.WriteString(string(canvas[i]))
		b.WriteString("│\n")
	}
	fmt.Fprintf(&b, "  %7.2f └%s┘\n", pMin, strings.Repeat("─", scatterWidth))
	fmt.Fprintf(&b, "          %.2f%s%.2f\n", qMin, strings.Repeat(" ", scatterWidth-14), qMax)
	b.WriteString("\nlegend: . = early, o = middle, ● = late\n")
	return b.String()
}

func bounds(vals []float64) (lo, hi float64) {
	lo, hi = vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
