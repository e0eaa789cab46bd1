// SPDX-License-Identifier: MIT
// File: render.go
// Role: Terminal rendering of results: a header naming the working view and
//       an "Output" panel with the processing time. Plain mode emits bare text
//       for scripts and pipes.

package shell

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Renderer formats results for a terminal.
type Renderer struct {
	plain bool

	header  lipgloss.Style
	panel   lipgloss.Style
	title   lipgloss.Style
	elapsed lipgloss.Style
	errText lipgloss.Style
	prompt  lipgloss.Style
}

// NewRenderer returns a styled renderer, or a plain one when plain is true.
func NewRenderer(plain bool) *Renderer {
	border := lipgloss.Color("5")

	return &Renderer{
		plain: plain,
		header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2),
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true),
		elapsed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Italic(true),
		errText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true),
		prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Bold(true),
	}
}

// Plain reports whether styling is disabled.
func (r *Renderer) Plain() bool {
	return r.plain
}

// Header names the working view.
func (r *Renderer) Header(view string) string {
	line := fmt.Sprintf("Graph Visualizer (view: %s)", view)
	if r.plain {
		return "== " + line + " =="
	}

	return r.header.Render(line)
}

// Result renders a command result. Plain mode returns Text unchanged.
func (r *Renderer) Result(res Result) string {
	if r.plain {
		return res.Text
	}
	footer := r.elapsed.Render(fmt.Sprintf("Processing time: %.6fs", res.Elapsed.Seconds()))
	body := lipgloss.JoinVertical(lipgloss.Left,
		r.title.Render("Output"),
		"",
		res.Text,
		"",
		footer,
	)

	return r.panel.Render(body)
}

// Error renders a failure.
func (r *Renderer) Error(err error) string {
	if r.plain {
		return "error: " + err.Error()
	}

	return r.errText.Render("[ERROR] ") + err.Error()
}

// Prompt renders "<prefix>[<view>]> ".
func (r *Renderer) Prompt(prefix, view string) string {
	p := fmt.Sprintf("%s[%s]> ", prefix, view)
	if r.plain {
		return p
	}

	return r.prompt.Render(p)
}
