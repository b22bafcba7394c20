package organizer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"sortd/internal/category"
	"sortd/internal/contentid"
	"sortd/internal/fileutil"
	"sortd/internal/logging"
	"sortd/internal/movelog"
	"sortd/internal/services"
)

// sessionStampLayout is RFC 3339 with a fixed-width nanosecond field.
// RFC3339Nano trims trailing zeros, which breaks the lexicographic ordering
// undo relies on to find the newest session.
const sessionStampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Result aggregates the outcome of one organization session.
type Result struct {
	FilesMoved       int
	CategoryCounts   map[string]int
	DuplicateCount   int
	SpaceSavedBytes  int64
	FailedCount      int
	SessionTimestamp string
}

// Organizer runs one organization session over a target directory.
type Organizer struct {
	targetDir string
	log       *movelog.Log
	logger    *slog.Logger
	now       func() time.Time
}

// New constructs an Organizer for targetDir, recording moves into log.
func New(targetDir string, log *movelog.Log, logger *slog.Logger) *Organizer {
	return &Organizer{
		targetDir: targetDir,
		log:       log,
		logger:    logging.NewComponentLogger(logger, "organizer"),
		now:       time.Now,
	}
}

// SetNowForTests overrides the session clock and returns a restore func.
func (o *Organizer) SetNowForTests(now func() time.Time) func() {
	previous := o.now
	o.now = now
	return func() { o.now = previous }
}

// Run executes one session: it ensures category folders and the log header
// exist, then hashes, classifies, moves, and logs every eligible immediate
// child of the target. Per-file failures are logged and skipped; only a
// missing target aborts before any mutation.
func (o *Organizer) Run(ctx context.Context) (*Result, error) {
	info, err := os.Stat(o.targetDir)
	if err != nil {
		return nil, services.Wrap(services.ErrTargetNotFound, "organizing", "stat target", "Target folder does not exist", err)
	}
	if !info.IsDir() {
		return nil, services.Wrap(services.ErrTargetNotFound, "organizing", "stat target", "Target path is not a directory", nil)
	}
	target, err := filepath.Abs(o.targetDir)
	if err != nil {
		return nil, services.Wrap(services.ErrTargetNotFound, "organizing", "resolve target", "Unable to resolve target path", err)
	}

	if err := ensureCategoryFolders(target); err != nil {
		return nil, err
	}
	if err := o.log.EnsureHeader(); err != nil {
		return nil, err
	}

	entries, err := scanTarget(target, o.log.BaseNames())
	if err != nil {
		return nil, err
	}

	// One timestamp for the whole session; undo groups the log by it.
	result := &Result{
		CategoryCounts:   make(map[string]int),
		SessionTimestamp: o.now().UTC().Format(sessionStampLayout),
	}
	seen := make(map[string]string)
	var totalOriginalBytes, firstSeenBytes int64

	for _, ent := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if ent.kind != kindRegular {
			continue
		}

		totalOriginalBytes += ent.size

		digest, hashErr := contentid.Fingerprint(ent.path)
		if hashErr != nil {
			wrapped := services.Wrap(services.ErrHashIO, "organizing", "fingerprint file", "Could not read file for hashing", hashErr)
			o.logger.Warn("skipping unreadable file", logging.String("file", ent.name), logging.Error(wrapped))
			result.FailedCount++
			continue
		}

		if firstName, dup := seen[digest]; dup {
			result.DuplicateCount++
			// Duplicates are still moved; this is informational only.
			o.logger.Warn("duplicate content found",
				logging.String("file", ent.name),
				logging.String("same_as", firstName),
			)
		} else {
			seen[digest] = ent.name
			firstSeenBytes += ent.size
		}

		categoryName := category.Classify(filepath.Ext(ent.name))
		destination := filepath.Join(target, categoryName, ent.name)
		if moveErr := fileutil.MoveFile(ent.path, destination); moveErr != nil {
			wrapped := services.Wrap(services.ErrMoveIO, "organizing", "move file", "Could not relocate file", moveErr)
			o.logger.Warn("skipping unmovable file", logging.String("file", ent.name), logging.Error(wrapped))
			result.FailedCount++
			continue
		}

		result.FilesMoved++
		result.CategoryCounts[categoryName]++

		record := movelog.Record{
			Timestamp:    result.SessionTimestamp,
			OriginalPath: ent.path,
			Destination:  destination,
			FileHash:     digest,
			FileSize:     ent.size,
		}
		if appendErr := o.log.Append(record); appendErr != nil {
			// The file already moved; without a row it is invisible to
			// undo, so surface the gap loudly.
			o.logger.Error("move succeeded but log append failed",
				logging.String("file", ent.name),
				logging.Error(appendErr),
			)
		}

		o.logger.Info("moved file",
			logging.String("file", ent.name),
			logging.String("category", categoryName),
			logging.Int64("size", ent.size),
		)
	}

	result.SpaceSavedBytes = totalOriginalBytes - firstSeenBytes
	o.logger.Info("organization complete",
		logging.Int("files_moved", result.FilesMoved),
		logging.Int("duplicates", result.DuplicateCount),
		logging.Int64("space_saved_bytes", result.SpaceSavedBytes),
		logging.String(logging.FieldSession, result.SessionTimestamp),
	)
	return result, nil
}

func ensureCategoryFolders(target string) error {
	for _, name := range category.Names() {
		if err := os.MkdirAll(filepath.Join(target, name), 0o755); err != nil {
			return services.Wrap(services.ErrMoveIO, "organizing", "create category folder", "Could not create "+name, err)
		}
	}
	return nil
}
