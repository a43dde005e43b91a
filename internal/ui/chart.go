package ui

import (
	"fmt"
	"math"
	"strings"

	"sharpeguess/internal/stats"
)

// Braille cells pack a 2x4 dot grid, so a width x height cell chart has a
// 2*width x 4*height dot resolution.
const (
	brailleBase  = 0x2800
	dotsPerCellX = 2
	dotsPerCellY = 4
)

// brailleOffsets maps (dotX, dotY) within a cell to the braille bit.
var brailleOffsets = [dotsPerCellX][dotsPerCellY]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// RenderChart draws the cumulative return series as a braille line chart of
// the given cell dimensions, with y-axis labels on the left. Non-finite
// points are skipped. Returns "" when the area is too small to draw.
func RenderChart(points []stats.PlotPoint, width, height int) string {
	const labelWidth = 9 // "  -12.34 " style gutter

	plotWidth := width - labelWidth
	if plotWidth < 4 || height < 2 || len(points) == 0 {
		return ""
	}

	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		if math.IsNaN(p.CumReturn) || math.IsInf(p.CumReturn, 0) {
			continue
		}
		if p.CumReturn < yMin {
			yMin = p.CumReturn
		}
		if p.CumReturn > yMax {
			yMax = p.CumReturn
		}
	}
	if yMin > yMax {
		// Nothing finite to plot.
		return ""
	}
	if yMin == yMax {
		// Flat series; pad so the line lands mid-chart.
		yMin -= 1
		yMax += 1
	}

	dotsX := plotWidth * dotsPerCellX
	dotsY := height * dotsPerCellY
	cells := make([][]rune, height)
	for i := range cells {
		cells[i] = make([]rune, plotWidth)
	}

	lastDay := points[len(points)-1].Day
	if lastDay == 0 {
		lastDay = 1
	}
	for _, p := range points {
		if math.IsNaN(p.CumReturn) || math.IsInf(p.CumReturn, 0) {
			continue
		}
		dx := p.Day * (dotsX - 1) / lastDay
		frac := (p.CumReturn - yMin) / (yMax - yMin)
		dy := int(math.Round(float64(dotsY-1) * (1 - frac)))

		cells[dy/dotsPerCellY][dx/dotsPerCellX] |= brailleOffsets[dx%dotsPerCellX][dy%dotsPerCellY]
	}

	var b strings.Builder
	for row := 0; row < height; row++ {
		switch row {
		case 0:
			fmt.Fprintf(&b, "%8.2f ", yMax)
		case height - 1:
			fmt.Fprintf(&b, "%8.2f ", yMin)
		default:
			b.WriteString(strings.Repeat(" ", labelWidth))
		}
		for _, c := range cells[row] {
			if c == 0 {
				b.WriteRune(' ')
			} else {
				b.WriteRune(brailleBase + c)
			}
		}
		if row < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
