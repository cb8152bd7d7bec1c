package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/mindguard/internal/classifier"
	"github.com/alexanderramin/mindguard/internal/cli/formatter"
	"github.com/alexanderramin/mindguard/internal/risk"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Analyze a reflection and record it in the session journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := gatherReflectionText(app, args)
			if err != nil {
				return err
			}

			analysis, err := app.Analysis.Analyze(context.Background(), text)
			if err != nil {
				return describeAnalyzeError(err)
			}

			fmt.Println(formatter.FormatAnalysis(analysis))
			return nil
		},
	}

	return cmd
}

// gatherReflectionText resolves the reflection from, in order: command
// arguments, a piped stdin, or an interactive form.
func gatherReflectionText(app *App, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if app.IsInteractive == nil || !app.IsInteractive() {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	var text string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Daily Reflection").
				Description("Describe how you're feeling today.").
				Placeholder("Example: I feel overwhelmed with school and haven't been sleeping well...").
				Value(&text),
		),
	).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return "", err
	}
	return text, nil
}

// describeAnalyzeError maps pipeline sentinels to user-facing messages.
func describeAnalyzeError(err error) error {
	switch {
	case errors.Is(err, risk.ErrEmptyText):
		return errors.New("please enter how you're feeling")
	case errors.Is(err, classifier.ErrUnavailable),
		errors.Is(err, classifier.ErrTimeout),
		errors.Is(err, classifier.ErrRetryExhausted),
		errors.Is(err, classifier.ErrInvalidOutput):
		return fmt.Errorf("analysis unavailable: %w", err)
	default:
		return err
	}
}
