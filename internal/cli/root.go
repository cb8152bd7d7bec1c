package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/mindguard/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Analysis service.AnalysisService
	Journal  service.JournalService
	Report   service.ReportService

	// IsInteractive reports whether stdin is an interactive terminal.
	// It gates the shell-by-default entrypoint and the analyze form.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "mindguard" command and registers all
// subcommands against the provided App. Running the bare command on an
// interactive terminal drops into the shell.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "mindguard",
		Short: "Emotional risk journaling with coping suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runShell(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newAnalyzeCmd(app),
		newHistoryCmd(app),
		newTrendCmd(app),
		newExportCmd(app),
		newShellCmd(app),
	)

	return root
}
