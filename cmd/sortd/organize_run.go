package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sortd/internal/config"
	"sortd/internal/logging"
	"sortd/internal/movelog"
	"sortd/internal/organizer"
)

func runOrganize(cmd *cobra.Command, cfg *config.Config, targetFlag, logFlag string) error {
	target, err := resolveTarget(targetFlag, cfg)
	if err != nil {
		return err
	}
	logPath, err := resolveLogPath(logFlag, cfg)
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

	fmt.Fprintf(cmd.OutOrStdout(), "Organizing %s\n", target)

	started := time.Now()
	log := movelog.New(logPath)
	result, err := organizer.New(target, log, logger).Run(cmd.Context())
	if err != nil {
		return err
	}
	elapsed := time.Since(started)

	fmt.Fprintln(cmd.OutOrStdout(), renderOrganizeSummary(result, elapsed, freeSpace(target)))
	return nil
}
