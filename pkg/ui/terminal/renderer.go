// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/linkmirror/pkg/mirror"
	"github.com/arthur-debert/linkmirror/pkg/style"
	"github.com/arthur-debert/linkmirror/pkg/ui/display"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using pterm tables and lipgloss
// styling
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.StatusResult:
		return r.renderStatus(v)
	case *display.ApplyResult:
		return r.renderApply(v)
	case *display.RulesResult:
		return r.renderRules(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error with styling
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "%s %v\n", style.ErrorStyle.Render("Error:"), err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) renderHeader(s *display.StatusResult) {
	fmt.Fprintf(r.output, "%s %s\n", style.TitleStyle.Render("Source:  "), style.PathStyle.Render(s.SourceRoot))
	target := s.TargetRoot
	if target == "" {
		target = "(none)"
	}
	fmt.Fprintf(r.output, "%s %s\n", style.TitleStyle.Render("Target:  "), style.PathStyle.Render(target))
	fmt.Fprintf(r.output, "%s %s\n\n", style.TitleStyle.Render("Platform:"), s.Platform)
}

func (r *Renderer) renderStatus(s *display.StatusResult) error {
	r.renderHeader(s)

	if len(s.Pairs) == 0 {
		fmt.Fprintln(r.output, style.MutedStyle.Render("Nothing to show."))
	} else {
		data := pterm.TableData{{"Origin", "", "Destination", "Target"}}
		for _, p := range s.Pairs {
			data = append(data, []string{
				style.Entry(p.State.SourceStyle, p.Rule.Origin),
				style.Indicator(p.State.Indicator),
				style.Entry(p.State.TargetStyle, p.Rule.Destination),
				style.MutedStyle.Render(p.State.TargetTooltip),
			})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(r.output, table)
		fmt.Fprintf(r.output, "\n%s\n", style.MutedStyle.Render(s.Summary()))
	}

	if s.SetupProblem != "" {
		fmt.Fprintf(r.output, "%s %s\n", style.WarningStyle.Render("Apply unavailable:"), s.SetupProblem)
	}
	return nil
}

func (r *Renderer) renderApply(a *display.ApplyResult) error {
	for _, res := range a.Results {
		fmt.Fprintf(r.output, "%s %s → %s", outcomeLabel(res.Outcome),
			style.PathStyle.Render(res.Target), res.Source)
		if res.Error != "" {
			fmt.Fprintf(r.output, ": %s", style.ErrorStyle.Render(res.Error))
		}
		fmt.Fprintln(r.output)
	}
	fmt.Fprintf(r.output, "%s\n\n", style.Bold(a.Summary()))
	return r.renderStatus(&a.Status)
}

func (r *Renderer) renderRules(rs *display.RulesResult) error {
	fmt.Fprintf(r.output, "%s %s\n", style.TitleStyle.Render("Rules: "), style.PathStyle.Render(rs.Path))
	fmt.Fprintf(r.output, "%s %s\n", style.TitleStyle.Render("Source:"), style.PathStyle.Render(rs.SourceRoot))

	for _, p := range rs.Platforms {
		name := style.Bold(p.Name)
		if p.Name == rs.Selected {
			name += " " + style.SuccessStyle.Render("(selected)")
		}
		fmt.Fprintf(r.output, "\n%s\n", name)
		if len(p.Rules) == 0 {
			fmt.Fprintln(r.output, style.MutedStyle.Render("  no rules"))
			continue
		}
		for _, rule := range p.Rules {
			fmt.Fprintf(r.output, "  %s → %s\n", rule.Origin, style.PathStyle.Render(rule.Destination))
		}
	}
	return nil
}

func outcomeLabel(o mirror.Outcome) string {
	label := fmt.Sprintf("%-12s", o)
	switch o {
	case mirror.OutcomeCreated:
		return style.SuccessStyle.Render(label)
	case mirror.OutcomeFailed:
		return style.ErrorStyle.Render(label)
	case mirror.OutcomeNotCreated:
		return style.WarningStyle.Render(label)
	default:
		return style.MutedStyle.Render(label)
	}
}
