package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

// Banner gradient endpoints, top to bottom.
var (
	bannerStart = rgb{0xFF, 0xBC, 0x05}
	bannerEnd   = rgb{0xFF, 0x1E, 0x05}
)

type rgb struct{ r, g, b uint8 }

func (c rgb) hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

// lerp returns the colour at position t (0..1) between c and to.
func (c rgb) lerp(to rgb, t float64) rgb {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-t) + float64(b)*t)
	}
	return rgb{mix(c.r, to.r), mix(c.g, to.g), mix(c.b, to.b)}
}

// printGradient writes text line by line, fading from start to end.
func printGradient(w io.Writer, text string, start, end rgb) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		t := 0.0
		if len(lines) > 1 {
			t = float64(i) / float64(len(lines)-1)
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(start.lerp(end, t).hex()))
		fmt.Fprintln(w, style.Render(line))
	}
}
