package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/germanamz/promptour/cmd/promptour/internal/format"
	"github.com/germanamz/promptour/cmd/promptour/internal/styles"
	"github.com/germanamz/promptour/pkg/course"
)

var _ course.View = (*termView)(nil)

// termView renders runner events to the terminal: prose and replies as
// markdown, prompts in a bordered block, diffs with colored +/- lines.
type termView struct {
	out io.Writer
	md  *format.Renderer
}

func newTermView(out io.Writer, width int) *termView {
	return &termView{
		out: out,
		md:  format.NewRenderer(width),
	}
}

func (v *termView) Prose(md string) {
	fmt.Fprintln(v.out, v.md.Markdown(md))
	fmt.Fprintln(v.out)
}

func (v *termView) Prompt(title, system, prompt string) {
	fmt.Fprintln(v.out, styles.TitleStyle.Render("▸ "+title))

	if system != "" {
		line := format.Truncate("system: "+system, v.md.Width())
		fmt.Fprintln(v.out, styles.SystemStyle.Render(line))
	}

	fmt.Fprintln(v.out, styles.PromptStyle.Render(prompt))
}

func (v *termView) Reply(text string) {
	fmt.Fprintln(v.out, v.md.Markdown(text))
	fmt.Fprintln(v.out)
}

func (v *termView) Comparison(diff string) {
	if strings.TrimSpace(diff) == "" {
		fmt.Fprintln(v.out, styles.DimStyle.Render("(responses are identical)"))
		fmt.Fprintln(v.out)
		return
	}

	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"), strings.HasPrefix(line, "@@"):
			fmt.Fprintln(v.out, styles.DimStyle.Render(line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(v.out, styles.DiffAddStyle.Render(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(v.out, styles.DiffDelStyle.Render(line))
		default:
			fmt.Fprintln(v.out, line)
		}
	}

	fmt.Fprintln(v.out)
}

func (v *termView) Summary(calls, inputTokens, outputTokens int) {
	fmt.Fprintln(v.out, styles.DimStyle.Render(fmt.Sprintf(
		"%d model calls · %s in / %s out tokens",
		calls, format.FmtTokens(inputTokens), format.FmtTokens(outputTokens),
	)))
}
