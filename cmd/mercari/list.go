package cmd

import (
	"context"
	"fmt"

	"github.com/Hikari118/mercari-build-training/pkg/config"
	"github.com/Hikari118/mercari-build-training/pkg/logger"
	"github.com/Hikari118/mercari-build-training/pkg/sources"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newListCmd(opts *config.Options, log func() *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the items on the marketplace",
		Long:  "Fetch the items once and display them in a formatted table",
		RunE: func(cmd *cobra.Command, args []string) error {
			source := sources.NewMercari(opts.APIBaseURL(), opts.Timeout)
			out := cmd.OutOrStdout()

			items, err := source.FetchItems(context.Background())
			if err != nil {
				if l := log(); l != nil {
					l.Error("GET error", zap.Error(err))
				}
				return err
			}

			if len(items.Items) == 0 {
				fmt.Fprintln(out, "🛒 No items on the marketplace yet.")
				return nil
			}

			columns := []table.Column{
				{Title: "ID", Width: 6},
				{Title: "Name", Width: 30},
				{Title: "Category", Width: 16},
				{Title: "Image", Width: 50},
			}

			rows := []table.Row{}
			for _, item := range items.Items {
				rows = append(rows, table.Row{
					fmt.Sprintf("%d", item.ID),
					truncateString(item.Name, 28),
					truncateString(item.Category, 14),
					source.ImageURL(item.ImageName),
				})
			}

			t := table.New(
				table.WithColumns(columns),
				table.WithRows(rows),
				table.WithFocused(false),
				// the header line counts toward the height
				table.WithHeight(len(rows)+1),
			)

			s := table.DefaultStyles()
			s.Header = s.Header.
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")).
				BorderBottom(true).
				Bold(true)
			s.Selected = s.Cell
			t.SetStyles(s)

			fmt.Fprintf(out, "\n🛒 Marketplace (%d items)\n\n", len(items.Items))
			fmt.Fprintln(out, t.View())
			return nil
		},
	}
}

func truncateString(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
