package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/mindguard/internal/cli/formatter"
)

func newHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show this session's reflection history",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Journal.All(context.Background())
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Println(formatter.Dim("No reflections yet."))
				return nil
			}

			fmt.Print(formatter.RenderBox("Reflection History", formatter.FormatHistoryTable(entries)))
			fmt.Println()
			return nil
		},
	}
}
