package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"sortd/internal/category"
	"sortd/internal/organizer"
)

var countPrinter = message.NewPrinter(language.English)

// renderOrganizeSummary formats the closing report of an organize run:
// headline numbers first, then a per-category table for anything that moved.
func renderOrganizeSummary(res *organizer.Result, elapsed time.Duration, free uint64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Organized %s files in %.2f seconds\n",
		countPrinter.Sprint(res.FilesMoved), elapsed.Seconds())
	if res.DuplicateCount > 0 {
		fmt.Fprintf(&b, "Duplicate files found: %s\n", countPrinter.Sprint(res.DuplicateCount))
	}
	if res.SpaceSavedBytes > 0 {
		fmt.Fprintf(&b, "Space reclaimable by removing duplicates: %s\n",
			humanize.Bytes(uint64(res.SpaceSavedBytes)))
	}
	if res.FailedCount > 0 {
		fmt.Fprintf(&b, "Files skipped due to errors: %s\n", countPrinter.Sprint(res.FailedCount))
	}
	if free > 0 {
		fmt.Fprintf(&b, "Free space on target volume: %s\n", humanize.Bytes(free))
	}

	if res.FilesMoved == 0 {
		b.WriteString("Nothing needed organizing - everything is already sorted\n")
		return b.String()
	}

	rows := make([][]string, 0, len(res.CategoryCounts))
	for _, name := range category.Names() {
		if count := res.CategoryCounts[name]; count > 0 {
			rows = append(rows, []string{name, countPrinter.Sprint(count)})
		}
	}
	b.WriteString(renderTable(
		[]string{"Category", "Files"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	))
	b.WriteByte('\n')
	return b.String()
}
