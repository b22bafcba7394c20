package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sortd/internal/config"
	"sortd/internal/logging"
	"sortd/internal/movelog"
	"sortd/internal/undo"
)

func runUndo(cmd *cobra.Command, cfg *config.Config, logFlag string) error {
	logPath, err := resolveLogPath(logFlag, cfg)
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

	fmt.Fprintf(cmd.OutOrStdout(), "Undoing the most recent run recorded in %s\n", logPath)

	started := time.Now()
	restored, err := undo.New(movelog.New(logPath), logger).Run(cmd.Context())
	if err != nil {
		return err
	}
	elapsed := time.Since(started)

	if restored > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Restored %d files in %.2f seconds\n", restored, elapsed.Seconds())
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "No files were restored")
	}
	return nil
}
