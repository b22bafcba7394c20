package main

import (
	"github.com/spf13/cobra"
)

const rootLong = `sortd classifies each file in a target folder by extension, moves it into a
matching category subfolder (Images, Documents, Audio, ...), and records every
move in an append-only log so the most recent run can be undone.`

func newRootCommand() *cobra.Command {
	var configFlag string
	var targetFlag string
	var logFlag string
	var undoFlag bool

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "sortd",
		Short:         "Sort a folder's files into category subfolders, with undo",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if undoFlag {
				return runUndo(cmd, cfg, logFlag)
			}
			return runOrganize(cmd, cfg, targetFlag, logFlag)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVar(&targetFlag, "target", "", "Folder to organize (default: ~/Downloads)")
	rootCmd.Flags().StringVar(&logFlag, "log", "", "Move log path (default: organization_log.csv)")
	rootCmd.Flags().BoolVar(&undoFlag, "undo", false, "Undo the most recent organization run")

	rootCmd.AddCommand(newCategoriesCommand())
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
