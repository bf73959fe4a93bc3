// Package render writes formatted lines to a terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/omarshaarawi/nbacli/internal/format"
)

type Renderer struct {
	styles map[format.Style]*color.Color
}

// New returns a renderer that emits ANSI styles when colorize is set.
func New(colorize bool) *Renderer {
	styles := map[format.Style]*color.Color{
		format.StyleHeader:  color.New(color.Bold),
		format.StylePlayoff: color.New(color.FgGreen),
		format.StyleLottery: color.New(color.FgRed),
	}
	for _, c := range styles {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return &Renderer{styles: styles}
}

// Plain renders lines without any styling.
func Plain(lines []format.Line) string {
	return New(false).String(lines)
}

func (r *Renderer) Line(l format.Line) string {
	parts := make([]string, len(l.Cells))
	for i, c := range l.Cells {
		parts[i] = pad(c)
	}
	s := strings.TrimRight(strings.Join(parts, " "), " ")

	if c, ok := r.styles[l.Style]; ok && s != "" {
		return c.Sprint(s)
	}
	return s
}

func (r *Renderer) String(lines []format.Line) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(r.Line(l))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *Renderer) Render(w io.Writer, lines []format.Line) error {
	_, err := io.WriteString(w, r.String(lines))
	return err
}

func pad(c format.Cell) string {
	if c.Width <= 0 {
		return c.Text
	}
	if c.Align == format.AlignRight {
		return runewidth.FillLeft(c.Text, c.Width)
	}
	return runewidth.FillRight(c.Text, c.Width)
}

// ShouldColorize resolves a color mode of auto, always or never for the
// given output file.
func ShouldColorize(mode string, f *os.File) (bool, error) {
	switch strings.ToLower(mode) {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
			return false, nil
		}
		fd := f.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd), nil
	default:
		return false, fmt.Errorf("unknown color mode %q", mode)
	}
}
