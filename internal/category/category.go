package category

import "strings"

// CatchAll receives files whose extension matches no declared category.
const CatchAll = "Others"

// Category pairs a folder name with the lowercase extensions routed to it.
type Category struct {
	Name       string
	Extensions []string
}

// table declaration order is part of the output contract: folder names and
// first-match-wins resolution both follow it.
var table = []Category{
	{Name: "Images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tiff", ".svg", ".heic"}},
	{Name: "Documents", Extensions: []string{".pdf", ".docx", ".doc", ".txt", ".rtf", ".xlsx", ".xls", ".pptx", ".ppt", ".md", ".odt"}},
	{Name: "Audio", Extensions: []string{".mp3", ".wav", ".flac", ".aac", ".ogg", ".m4a", ".wma"}},
	{Name: "Videos", Extensions: []string{".mp4", ".mov", ".avi", ".mkv", ".flv", ".wmv", ".mpeg", ".webm", ".3gp"}},
	{Name: "Code", Extensions: []string{".py", ".js", ".html", ".css", ".java", ".cpp", ".c", ".php", ".json", ".xml", ".yml", ".sql"}},
	{Name: "Archives", Extensions: []string{".zip", ".rar", ".7z", ".tar", ".gz", ".bz2"}},
	{Name: "Executables", Extensions: []string{".exe", ".msi", ".dmg", ".pkg", ".app", ".bat", ".sh", ".deb", ".rpm"}},
	{Name: "Design", Extensions: []string{".psd", ".ai", ".xd", ".sketch", ".fig", ".indd"}},
	{Name: "Data", Extensions: []string{".csv", ".tsv", ".db", ".sqlite", ".parquet", ".feather"}},
	{Name: CatchAll, Extensions: nil},
}

// byExtension is built once at startup; first match wins on duplicates so the
// lookup stays equivalent to scanning the table in declaration order.
var byExtension = func() map[string]string {
	m := make(map[string]string)
	for _, cat := range table {
		for _, ext := range cat.Extensions {
			if _, exists := m[ext]; !exists {
				m[ext] = cat.Name
			}
		}
	}
	return m
}()

// Classify maps a file extension (leading dot, any case, possibly empty) to a
// category name. Unrecognized and empty extensions land in the catch-all.
func Classify(extension string) string {
	if name, ok := byExtension[strings.ToLower(extension)]; ok {
		return name
	}
	return CatchAll
}

// Table returns the categories in declaration order.
func Table() []Category {
	out := make([]Category, len(table))
	copy(out, table)
	return out
}

// Names returns the category folder names in declaration order.
func Names() []string {
	names := make([]string, 0, len(table))
	for _, cat := range table {
		names = append(names, cat.Name)
	}
	return names
}
