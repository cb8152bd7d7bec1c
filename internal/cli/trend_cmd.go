package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/mindguard/internal/cli/formatter"
	"github.com/alexanderramin/mindguard/internal/report"
)

func newTrendCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Show the emotional risk trend for this session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			entries, err := app.Journal.All(ctx)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println(formatter.Dim("No reflections yet."))
				return nil
			}

			if outPath != "" {
				png, err := app.Report.TrendPNG(ctx)
				if err != nil {
					return describeTrendError(err)
				}
				if err := os.WriteFile(outPath, png, 0644); err != nil {
					return fmt.Errorf("writing trend image: %w", err)
				}
				fmt.Printf("Trend chart written to %s\n", outPath)
				return nil
			}

			scores := make([]int, len(entries))
			for i, e := range entries {
				scores[i] = e.RiskScore
			}
			fmt.Print(formatter.RenderBox("Emotional Trend", formatter.RenderTrend(scores, 10)))
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Write the trend chart as a PNG to this path")

	return cmd
}

func describeTrendError(err error) error {
	if errors.Is(err, report.ErrRenderChart) {
		return fmt.Errorf("could not render trend chart: %w", err)
	}
	return err
}
