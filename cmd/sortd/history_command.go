package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"sortd/internal/movelog"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var logFlag string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Summarize the sessions recorded in the move log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logPath, err := resolveLogPath(logFlag, cfg)
			if err != nil {
				return err
			}

			log := movelog.New(logPath)
			if !log.Exists() {
				fmt.Fprintf(cmd.OutOrStdout(), "No organization log found at %s\n", logPath)
				return nil
			}
			records, err := log.ReadAll()
			if err != nil {
				return err
			}
			sessions := movelog.GroupSessions(records)
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Organization log is empty")
				return nil
			}

			rows := make([][]string, 0, len(sessions))
			for _, session := range sessions {
				rows = append(rows, []string{
					session.Timestamp,
					countPrinter.Sprint(len(session.Records)),
					humanize.Bytes(uint64(session.TotalBytes())),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Session", "Moves", "Bytes"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&logFlag, "log", "", "Move log path (default: organization_log.csv)")
	return cmd
}
