package undo

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"sortd/internal/fileutil"
	"sortd/internal/logging"
	"sortd/internal/movelog"
	"sortd/internal/services"
)

// Engine reverses the most recent organization session recorded in the log.
type Engine struct {
	log    *movelog.Log
	logger *slog.Logger
}

// New constructs an Engine over the given move log.
func New(log *movelog.Log, logger *slog.Logger) *Engine {
	return &Engine{
		log:    log,
		logger: logging.NewComponentLogger(logger, "undo"),
	}
}

// Run restores the newest session's files to their original paths and returns
// how many records were reversed. A missing or empty log is not an error:
// nothing is mutated and the count is zero. Per-record failures are logged
// and skipped; the log itself is never truncated, so undoing twice without an
// intervening organize reports failures for records already restored.
func (e *Engine) Run(ctx context.Context) (int, error) {
	if !e.log.Exists() {
		e.logger.Warn("no organization log found, nothing to undo", logging.String("log", e.log.Path()))
		return 0, nil
	}

	records, err := e.log.ReadAll()
	if err != nil {
		return 0, err
	}

	latest, ok := movelog.Latest(records)
	if !ok {
		e.logger.Info("organization log is empty, nothing to undo", logging.String("log", e.log.Path()))
		return 0, nil
	}

	e.logger.Info("reversing most recent session",
		logging.String(logging.FieldSession, latest.Timestamp),
		logging.Int("records", len(latest.Records)),
	)

	restored := 0
	for _, rec := range latest.Records {
		if err := ctx.Err(); err != nil {
			return restored, err
		}

		if mkdirErr := os.MkdirAll(filepath.Dir(rec.OriginalPath), 0o755); mkdirErr != nil {
			wrapped := services.Wrap(services.ErrRestoreIO, "undo", "recreate original directory", "Could not recreate original parent directory", mkdirErr)
			e.logger.Warn("skipping record", logging.String("file", filepath.Base(rec.Destination)), logging.Error(wrapped))
			continue
		}
		if moveErr := fileutil.MoveFile(rec.Destination, rec.OriginalPath); moveErr != nil {
			wrapped := services.Wrap(services.ErrRestoreIO, "undo", "restore file", "Could not restore file to original location", moveErr)
			e.logger.Warn("skipping record", logging.String("file", filepath.Base(rec.Destination)), logging.Error(wrapped))
			continue
		}

		restored++
		e.logger.Info("restored file",
			logging.String("file", filepath.Base(rec.OriginalPath)),
			logging.String("original_path", rec.OriginalPath),
		)
	}

	e.logger.Info("undo complete",
		logging.Int("restored", restored),
		logging.Int("skipped", len(latest.Records)-restored),
	)
	return restored, nil
}
