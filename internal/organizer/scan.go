package organizer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type entryKind int

const (
	kindRegular entryKind = iota
	kindDirectory
	kindOther
)

// entry is one immediate child of the target directory, tagged by kind so the
// session only ever operates on regular files.
type entry struct {
	name string
	path string
	kind entryKind
	size int64
}

// scanTarget enumerates the immediate children of dir, dropping hidden
// entries and anything named in skipNames (the move log itself). Enumeration
// order is whatever the platform returns; nothing downstream depends on it.
func scanTarget(dir string, skipNames map[string]struct{}) ([]entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read target directory: %w", err)
	}

	entries := make([]entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if _, skip := skipNames[name]; skip {
			continue
		}

		e := entry{name: name, path: filepath.Join(dir, name)}
		switch {
		case de.IsDir():
			e.kind = kindDirectory
		case de.Type().IsRegular():
			info, infoErr := de.Info()
			if infoErr != nil {
				// Vanished between ReadDir and stat; treat like a
				// non-file and let the session pass it by.
				e.kind = kindOther
				break
			}
			e.kind = kindRegular
			e.size = info.Size()
		default:
			e.kind = kindOther
		}
		entries = append(entries, e)
	}
	return entries, nil
}
