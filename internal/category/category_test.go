package category_test

import (
	"testing"

	"sortd/internal/category"
)

func TestClassifyKnownExtensions(t *testing.T) {
	cases := []struct {
		ext  string
		want string
	}{
		{".jpg", "Images"},
		{".heic", "Images"},
		{".pdf", "Documents"},
		{".md", "Documents"},
		{".mp3", "Audio"},
		{".mkv", "Videos"},
		{".py", "Code"},
		{".sql", "Code"},
		{".tar", "Archives"},
		{".deb", "Executables"},
		{".sketch", "Design"},
		{".parquet", "Data"},
	}
	for _, tc := range cases {
		if got := category.Classify(tc.ext); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.ext, got, tc.want)
		}
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	if got := category.Classify(".JPG"); got != "Images" {
		t.Fatalf("Classify(.JPG) = %q, want Images", got)
	}
	if got := category.Classify(".PdF"); got != "Documents" {
		t.Fatalf("Classify(.PdF) = %q, want Documents", got)
	}
}

func TestClassifyFallsBackToCatchAll(t *testing.T) {
	for _, ext := range []string{".zz", ".unknown", "", ".", ".tar.gz2"} {
		if got := category.Classify(ext); got != category.CatchAll {
			t.Errorf("Classify(%q) = %q, want %q", ext, got, category.CatchAll)
		}
	}
}

func TestTableOrderIsStable(t *testing.T) {
	want := []string{
		"Images", "Documents", "Audio", "Videos", "Code",
		"Archives", "Executables", "Design", "Data", "Others",
	}
	got := category.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() returned %d categories, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtensionsAreUniqueAcrossCategories(t *testing.T) {
	seen := make(map[string]string)
	for _, cat := range category.Table() {
		for _, ext := range cat.Extensions {
			if prev, dup := seen[ext]; dup {
				t.Errorf("extension %q listed under both %q and %q", ext, prev, cat.Name)
			}
			seen[ext] = cat.Name
		}
	}
}

func TestCatchAllHasNoExtensions(t *testing.T) {
	for _, cat := range category.Table() {
		if cat.Name == category.CatchAll && len(cat.Extensions) != 0 {
			t.Fatalf("catch-all category lists %d extensions", len(cat.Extensions))
		}
	}
}
