package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTargetNotFound aborts an invocation before anything is mutated.
	ErrTargetNotFound = errors.New("target not found")
	// ErrHashIO marks a file that could not be read for fingerprinting.
	ErrHashIO = errors.New("hash read failure")
	// ErrMoveIO marks a relocation that failed; no log row is written for it.
	ErrMoveIO = errors.New("move failure")
	// ErrLogMissing marks an undo request with no log file on disk.
	ErrLogMissing = errors.New("log missing")
	// ErrLogEmpty marks an undo request against a header-only log.
	ErrLogEmpty = errors.New("log empty")
	// ErrRestoreIO marks a single undo move that failed.
	ErrRestoreIO = errors.New("restore failure")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrMoveIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Recoverable reports whether err is a per-file failure: the current entry is
// skipped and the session keeps going.
func Recoverable(err error) bool {
	switch {
	case errors.Is(err, ErrHashIO), errors.Is(err, ErrMoveIO), errors.Is(err, ErrRestoreIO):
		return true
	default:
		return false
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "operation failure"
	}
	return strings.Join(parts, ": ")
}
