package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sortd/internal/category"
)

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show the extension-to-category routing table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0)
			for _, cat := range category.Table() {
				extensions := strings.Join(cat.Extensions, " ")
				if extensions == "" {
					extensions = "(everything else)"
				}
				rows = append(rows, []string{cat.Name, extensions})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Category", "Extensions"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}
}
