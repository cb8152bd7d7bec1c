package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/mindguard/internal/report"
)

const defaultReportPath = "MindGuard_Report.pdf"

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Export a PDF report of this session's reflections",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultReportPath
			if len(args) == 1 {
				path = args[0]
			}

			if err := app.Report.ExportPDF(context.Background(), path); err != nil {
				return describeExportError(err)
			}

			fmt.Printf("PDF report saved as %s\n", path)
			return nil
		},
	}
}

func describeExportError(err error) error {
	switch {
	case errors.Is(err, report.ErrEmptyJournal):
		return errors.New("nothing to export: analyze a reflection first")
	case errors.Is(err, report.ErrRenderChart):
		return fmt.Errorf("export failed: %w", err)
	default:
		return err
	}
}
