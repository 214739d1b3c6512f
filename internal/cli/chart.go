package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/fundburn/internal/model"
)

// FundingChart draws the cumulative pledge series as vertical bars on a y
// axis stepped by the graph's tick size.
type FundingChart struct {
	Width  int
	Height int

	// Label formats an x-axis date. Nil uses "Jan 2" in UTC.
	Label func(time.Time) string
}

// Render draws g. Series too narrow to chart fall back to a sparkline.
func (c FundingChart) Render(g model.GraphData) string {
	if len(g.Stats) == 0 {
		return mutedStyle.Render("  No funding data.")
	}

	label := c.Label
	if label == nil {
		label = func(t time.Time) string { return t.UTC().Format("Jan 2") }
	}

	values := make([]float64, len(g.Stats))
	labels := make([]string, len(g.Stats))
	for i, s := range g.Stats {
		values[i] = max(0, s.CumulativePledged.InexactFloat64())
		labels[i] = label(s.Date)
	}

	if c.Width < 15 || c.Height < 3 {
		return RenderSparkline(values)
	}
	return barChart(values, labels, g.YAxisTickSize, c.Width, c.Height)
}

func barChart(values []float64, labels []string, tick float64, width, height int) string {
	if !(tick > 0) || math.IsInf(tick, 0) {
		tick = 1
	}

	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}

	// A caller-chosen tick count can ask for more intervals than rows.
	numIntervals := max(1, int(math.Ceil(peak/tick)))
	for numIntervals > height {
		tick *= 2
		numIntervals = max(1, int(math.Ceil(peak/tick)))
	}
	ceiling := float64(numIntervals) * tick

	rowsPerTick := max(1, height/numIntervals)
	chartH := rowsPerTick * numIntervals

	yLabelW := max(4, len(axisLabel(ceiling))+1)
	tickLabels := make(map[int]string, numIntervals)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = axisLabel(tick * float64(i))
	}

	chartW := max(5, width-yLabelW-1)
	n := len(values)

	gap := 1
	barW := chartW
	if n > 1 {
		barW = (chartW - (n - 1)) / n
	}
	if barW < 2 && n > 1 {
		maxN := max(2, (chartW+1)/3)
		sampled := make([]float64, maxN)
		sampledLabels := make([]string, maxN)
		for i := range sampled {
			src := i * (n - 1) / (maxN - 1)
			sampled[i] = values[src]
			sampledLabels[i] = labels[src]
		}
		values, labels, n = sampled, sampledLabels, maxN
		barW = 2
	}
	barW = min(barW, 6)
	if n == 1 {
		gap = 0
	}
	axisLen := n*barW + (n-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	barStyle := lipgloss.NewStyle().Foreground(ColorGreen)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		b.WriteString(dimStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(dimStyle.Render("│"))

		for i, v := range values {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			switch {
			case v >= rowTop:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				idx := int((v - rowBottom) / (rowTop - rowBottom) * 8)
				idx = min(max(idx, 1), 8)
				b.WriteString(barStyle.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(strings.Repeat(" ", barW))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(dimStyle.Render("└"))
	b.WriteString(dimStyle.Render(strings.Repeat("─", axisLen)))
	b.WriteString("\n")

	if line := xAxisLabels(labels, barW, gap, axisLen); line != "" {
		b.WriteString(strings.Repeat(" ", yLabelW+1))
		b.WriteString(mutedStyle.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// xAxisLabels places as many labels under their bars as fit without
// overlapping. The last bar is always labeled when there is room.
func xAxisLabels(labels []string, barW, gap, axisLen int) string {
	n := len(labels)
	if n == 0 || axisLen <= 0 {
		return ""
	}

	buf := []rune(strings.Repeat(" ", axisLen))
	place := func(pos int, lbl string) int {
		r := []rune(lbl)
		end := min(pos+len(r), axisLen)
		copy(buf[pos:end], r[:end-pos])
		return end
	}

	lastPos := min((n-1)*(barW+gap), axisLen-len([]rune(labels[n-1])))
	lastEnd := -1
	for i := 0; i < n-1; i++ {
		pos := i * (barW + gap)
		if pos <= lastEnd || pos+len([]rune(labels[i])) >= lastPos {
			continue
		}
		lastEnd = place(pos, labels[i])
	}
	if lastPos >= 0 && lastPos > lastEnd {
		place(lastPos, labels[n-1])
	}

	return strings.TrimRight(string(buf), " ")
}

// axisLabel renders a tick value compactly: 1500 -> "1.5k", 2000000 -> "2M".
func axisLabel(v float64) string {
	for _, u := range []struct {
		div    float64
		suffix string
	}{{1e9, "B"}, {1e6, "M"}, {1e3, "k"}} {
		if v < u.div {
			continue
		}
		if v == math.Trunc(v/u.div)*u.div {
			return fmt.Sprintf("%.0f%s", v/u.div, u.suffix)
		}
		return fmt.Sprintf("%.1f%s", v/u.div, u.suffix)
	}
	if v >= 1 || v == 0 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
