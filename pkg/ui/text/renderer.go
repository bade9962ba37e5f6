// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/arthur-debert/linkmirror/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders any result type as plain text
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

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) renderStatus(s *display.StatusResult) error {
	fmt.Fprintf(r.output, "source:   %s\n", s.SourceRoot)
	fmt.Fprintf(r.output, "target:   %s\n", s.TargetRoot)
	fmt.Fprintf(r.output, "platform: %s\n\n", s.Platform)

	if len(s.Pairs) == 0 {
		fmt.Fprintln(r.output, "No pairs to show.")
	} else {
		tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ORIGIN\tSOURCE\t\tDESTINATION\tTARGET")
		for _, p := range s.Pairs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				p.Rule.Origin,
				p.State.SourceTooltip,
				indicator(p.State.Indicator),
				p.Rule.Destination,
				p.State.TargetTooltip,
			)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(r.output, "\n%s\n", s.Summary())
	}

	if s.SetupProblem != "" {
		fmt.Fprintf(r.output, "Apply unavailable: %s\n", s.SetupProblem)
	}
	return nil
}

func (r *Renderer) renderApply(a *display.ApplyResult) error {
	for _, res := range a.Results {
		line := fmt.Sprintf("%-12s %s -> %s", res.Outcome, res.Target, res.Source)
		if res.Error != "" {
			line += ": " + res.Error
		}
		fmt.Fprintln(r.output, line)
	}
	fmt.Fprintf(r.output, "%s\n\n", a.Summary())
	return r.renderStatus(&a.Status)
}

func (r *Renderer) renderRules(rs *display.RulesResult) error {
	fmt.Fprintf(r.output, "rules:  %s\n", rs.Path)
	fmt.Fprintf(r.output, "source: %s\n", rs.SourceRoot)

	for _, p := range rs.Platforms {
		marker := ""
		if p.Name == rs.Selected {
			marker = " (selected)"
		}
		fmt.Fprintf(r.output, "\n%s%s\n", p.Name, marker)
		if len(p.Rules) == 0 {
			fmt.Fprintln(r.output, "  (no rules)")
			continue
		}
		for _, rule := range p.Rules {
			fmt.Fprintf(r.output, "  %s -> %s\n", rule.Origin, rule.Destination)
		}
	}
	return nil
}

func indicator(s string) string {
	if s == "" {
		return " "
	}
	return s
}
