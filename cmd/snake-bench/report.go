package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const (
	graphHeight = 8
	graphWidth  = 60
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
)

// plot renders one series; flat or short series fall back to a note
func plot(series []float64, caption string) string {
	if len(series) < 2 {
		return caption + ": not enough samples"
	}
	return asciigraph.Plot(series,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Precision(4),
		asciigraph.Caption(caption),
	)
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}

func render(title string, tr trace, s summary) string {
	stats := []string{
		row("frames", fmt.Sprintf("%d (%d sub-steps)", tr.Frames, tr.SubSteps)),
		row("displacement", fmt.Sprintf("%.4f m", s.Displacement)),
		row("forward", fmt.Sprintf("%+.4f m", s.Forward)),
		row("mean speed", fmt.Sprintf("%.4f m/s", s.MeanSpeed)),
		row("final energy", fmt.Sprintf("%.6f J", s.FinalEnergy)),
		row("peak energy", fmt.Sprintf("%.6f J", s.PeakEnergy)),
	}
	if tr.Unsupported > 0 {
		stats = append(stats, warnStyle.Render(fmt.Sprintf("mode unsupported on %d frames", tr.Unsupported)))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(strings.Join(stats, "\n")))
	b.WriteString("\n")
	b.WriteString(graphStyle.Render(plot(tr.HeadX, "head x (m)")))
	b.WriteString("\n")
	b.WriteString(graphStyle.Render(plot(tr.HeadZ, "head z (m)")))
	b.WriteString("\n")
	b.WriteString(graphStyle.Render(plot(tr.Energy, "kinetic energy (J)")))
	b.WriteString("\n")
	return b.String()
}
