package movelog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultName is the log filename when no path is configured. Organize also
// skips directory entries carrying this name so the log never sorts itself.
const DefaultName = "organization_log.csv"

// header names the CSV columns, in order. The layout is a wire contract for
// external tools that inspect the log.
var header = []string{"timestamp", "original_path", "destination", "file_hash", "file_size"}

// Record is one logged relocation. Rows are append-only and never rewritten;
// undo reverses moves but leaves their rows in place.
type Record struct {
	Timestamp    string
	OriginalPath string
	Destination  string
	FileHash     string
	FileSize     int64
}

// Log is an append-only CSV store of move records. The file is opened and
// closed per operation, so it is always well formed between moves.
type Log struct {
	path string
}

// New returns a Log over the given file path. The file itself is created
// lazily by EnsureHeader.
func New(path string) *Log {
	return &Log{path: path}
}

// Path returns the log file location.
func (l *Log) Path() string {
	return l.path
}

// Exists reports whether the log file is present on disk.
func (l *Log) Exists() bool {
	info, err := os.Stat(l.path)
	return err == nil && !info.IsDir()
}

// EnsureHeader creates the log file with its header row when absent.
// Idempotent: an existing file is left untouched.
func (l *Log) EnsureHeader() error {
	if l.Exists() {
		return nil
	}
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("create log: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write log header: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush log header: %w", err)
	}
	return file.Close()
}

// Append adds one record to the end of the log. The file is opened in append
// mode and closed before returning, so a partial session still leaves every
// completed move durable.
func (l *Log) Append(rec Record) error {
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log for append: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	row := []string{
		rec.Timestamp,
		rec.OriginalPath,
		rec.Destination,
		rec.FileHash,
		strconv.FormatInt(rec.FileSize, 10),
	}
	if err := writer.Write(row); err != nil {
		return fmt.Errorf("append log row: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush log row: %w", err)
	}
	return file.Close()
}

// ReadAll returns every data row in file order. Calling it on a missing file
// is a caller error; undo checks Exists first. A header-only file yields an
// empty slice.
func (l *Log) ReadAll() ([]Record, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(header)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse log: %w", err)
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if i == 0 && row[0] == header[0] {
			continue
		}
		size, parseErr := strconv.ParseInt(row[4], 10, 64)
		if parseErr != nil {
			return nil, fmt.Errorf("parse log row %d size %q: %w", i+1, row[4], parseErr)
		}
		records = append(records, Record{
			Timestamp:    row[0],
			OriginalPath: row[1],
			Destination:  row[2],
			FileHash:     row[3],
			FileSize:     size,
		})
	}
	return records, nil
}

// BaseNames returns the filenames an organize pass must skip so the log never
// moves itself: the configured log's basename plus the default name.
func (l *Log) BaseNames() map[string]struct{} {
	names := map[string]struct{}{DefaultName: {}}
	if base := filepath.Base(l.path); base != "" && base != "." {
		names[base] = struct{}{}
	}
	return names
}
