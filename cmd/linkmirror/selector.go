package linkmirror

import (
	"context"
	"os"
	"strings"

	"github.com/arthur-debert/linkmirror/pkg/mirror"
	"github.com/arthur-debert/linkmirror/pkg/paths"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// flagSelector answers with the --target value
type flagSelector struct {
	path string
}

func (s *flagSelector) SelectFolder(ctx context.Context) (string, bool, error) {
	path, err := paths.Resolve(s.path)
	if err != nil {
		return "", false, err
	}
	return path, path != "", nil
}

// promptSelector asks on the terminal. Without a terminal, or on empty
// input, the selection counts as cancelled.
type promptSelector struct {
	interactive func() bool
	ask         func(defaultValue string) (string, error)
}

func newPromptSelector() *promptSelector {
	return &promptSelector{
		interactive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) && stdoutIsTerminal()
		},
		ask: func(defaultValue string) (string, error) {
			return pterm.DefaultInteractiveTextInput.
				WithDefaultValue(defaultValue).
				Show(MsgTargetPrompt)
		},
	}
}

func (s *promptSelector) SelectFolder(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if !s.interactive() {
		return "", false, nil
	}

	defaultValue, _ := os.Getwd()
	answer, err := s.ask(defaultValue)
	if err != nil {
		return "", false, err
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", false, nil
	}
	path, err := paths.Resolve(answer)
	if err != nil {
		return "", false, err
	}
	return path, true, nil
}

var (
	_ mirror.FolderSelector = (*flagSelector)(nil)
	_ mirror.FolderSelector = (*promptSelector)(nil)
)
