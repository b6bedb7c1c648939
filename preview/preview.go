// Package preview renders the visualization series a bake computes
// alongside its real channels: normalized loop phase, effective playback
// rate and the active slot index.
package preview

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/wolfexplode/loopbake/bake"
	"github.com/wolfexplode/loopbake/utils"
)

// Chart renders the preview series as an HTML line chart.
func Chart(p *bake.Preview, title string, w io.Writer) error {
	if p == nil {
		return fmt.Errorf("no preview series: bake was run without the preview flag")
	}

	xs := make([]string, len(p.Frames))
	phase := make([]opts.LineData, len(p.Frames))
	rate := make([]opts.LineData, len(p.Frames))
	slot := make([]opts.LineData, len(p.Frames))
	for i, frame := range p.Frames {
		xs[i] = strconv.Itoa(frame)
		phase[i] = opts.LineData{Value: p.Phase[i]}
		rate[i] = opts.LineData{Value: p.Rate[i]}
		slot[i] = opts.LineData{Value: p.Slot[i]}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Theme:     "dark",
			Width:     "1200px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("frames=%d loops~%d", len(p.Frames), countWraps(p.Phase)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	line.SetXAxis(xs).
		AddSeries("phase", phase).
		AddSeries("rate (loops/s)", rate).
		AddSeries("slot", slot)

	return line.Render(w)
}

const (
	stripChar = "█"
	ansiReset = "\x1b[0m"
)

// Strip renders a series as a fixed-width ANSI bar, coloring each block
// along a cold-to-hot gradient by value. Useful as a quick terminal
// glance at how the rate moves over the bake.
func Strip(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	toUnit := utils.ToUnitClamp(lo, hi)

	cold := colorful.Color{R: 0.15, G: 0.25, B: 0.85}
	hot := colorful.Color{R: 0.95, G: 0.25, B: 0.15}

	var b strings.Builder
	for i := 0; i < width; i++ {
		v := values[i*len(values)/width]
		c := cold.BlendLuv(hot, toUnit(v))
		r, g, bl := c.RGB255()
		fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm%s", r, g, bl, stripChar)
	}
	b.WriteString(ansiReset)
	return b.String()
}

func countWraps(phase []float64) int {
	wraps := 0
	for i := 1; i < len(phase); i++ {
		if phase[i] < phase[i-1] {
			wraps++
		}
	}
	return wraps
}
