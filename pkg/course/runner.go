package course

import (
	"context"
	"fmt"

	"github.com/germanamz/promptour/pkg/chats/chat"
	"github.com/germanamz/promptour/pkg/chats/message"
	"github.com/germanamz/promptour/pkg/chats/role"
	"github.com/germanamz/promptour/pkg/modeladapter"
	"github.com/germanamz/promptour/pkg/template"
	"github.com/pmezard/go-difflib/difflib"
)

// View receives runner events for display. Implementations render them to
// the terminal; tests record them.
type View interface {
	// Prose displays a markdown exposition block.
	Prose(md string)
	// Prompt displays the prompt about to be sent. system may be empty.
	Prompt(title, system, prompt string)
	// Reply displays the model's response.
	Reply(text string)
	// Comparison displays a unified diff between two responses.
	Comparison(diff string)
	// Summary displays end-of-lesson usage totals.
	Summary(calls, inputTokens, outputTokens int)
}

// Runner executes a lesson strictly sequentially: one blocking model call at
// a time, in section order. Any substitution or invocation error aborts the
// lesson.
type Runner struct {
	Completer modeladapter.Completer
	View      View
}

// Run executes every section of the lesson.
func (r *Runner) Run(ctx context.Context, l Lesson) error {
	if err := l.Validate(); err != nil {
		return err
	}

	for i, s := range l.Sections {
		if err := r.runSection(ctx, s); err != nil {
			return fmt.Errorf("lesson %q section %d: %w", l.Meta.Name, i, err)
		}
	}

	if u, ok := r.Completer.(modeladapter.UsageReporter); ok {
		t := u.UsageTracker()
		total := t.Total()
		r.View.Summary(t.Count(), total.InputTokens, total.OutputTokens)
	}

	return nil
}

func (r *Runner) runSection(ctx context.Context, s Section) error {
	switch {
	case s.Prose != "":
		r.View.Prose(s.Prose)
		return nil

	case s.Example != nil:
		_, err := r.send(ctx, s.Example.Title, s.Example.System, s.Example.Prompt)
		return err

	case s.Templated != nil:
		prompt, err := template.New(s.Templated.Template).Format(s.Templated.Vars)
		if err != nil {
			return err
		}

		_, err = r.send(ctx, s.Templated.Title, s.Templated.System, prompt)
		return err

	case s.Compare != nil:
		return r.runCompare(ctx, s.Compare)

	default:
		return fmt.Errorf("course: empty section")
	}
}

// send shows the prompt, performs one blocking completion, and shows the
// reply.
func (r *Runner) send(ctx context.Context, title, system, prompt string) (string, error) {
	r.View.Prompt(title, system, prompt)

	c := chat.New()
	if system != "" {
		c.Append(message.New(role.System, system))
	}
	c.Append(message.New(role.User, prompt))

	reply, err := r.Completer.Complete(ctx, c)
	if err != nil {
		return "", err
	}

	r.View.Reply(reply.Text)

	return reply.Text, nil
}

// runCompare sends the two variants one after another, then diffs the
// responses so the reader sees what the wording changed.
func (r *Runner) runCompare(ctx context.Context, cmp *Compare) error {
	respA, err := r.send(ctx, cmp.Title+" (variant A)", cmp.System, cmp.A)
	if err != nil {
		return err
	}

	respB, err := r.send(ctx, cmp.Title+" (variant B)", cmp.System, cmp.B)
	if err != nil {
		return err
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(respA),
		B:        difflib.SplitLines(respB),
		FromFile: "variant-a",
		ToFile:   "variant-b",
		Context:  2,
	})
	if err != nil {
		return fmt.Errorf("course: diff responses: %w", err)
	}

	r.View.Comparison(diff)

	return nil
}
