package dotenv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestFind_WalksParents(t *testing.T) {
	root := t.TempDir()
	want := writeFile(t, filepath.Join(root, ".env"), "A=1\n")

	deep := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Find(deep, ".env")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	if got != want {
		t.Errorf("Find = %q, want %q", got, want)
	}
}

func TestFind_PrefersNearest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".env"), "A=root\n")
	want := writeFile(t, filepath.Join(root, "sub", ".env"), "A=sub\n")

	got, err := Find(filepath.Join(root, "sub"), ".env")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	if got != want {
		t.Errorf("Find = %q, want %q", got, want)
	}
}

func TestFind_SkipsDirectories(t *testing.T) {
	root := t.TempDir()
	want := writeFile(t, filepath.Join(root, "custom.env"), "A=1\n")

	// A directory with the same name is not a match.
	sub := filepath.Join(root, "sub")
	if err := os.MkdirAll(filepath.Join(sub, "custom.env"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Find(sub, "custom.env")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	if got != want {
		t.Errorf("Find = %q, want %q", got, want)
	}
}

func TestFind_NotFound(t *testing.T) {
	_, err := Find(t.TempDir(), "denv-test-no-such-file.env")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want %v", err, ErrNotFound)
	}
}

func TestFind_DefaultsToWorkingDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".env"), "A=1\n")
	t.Chdir(root)

	got, err := Find("", ".env")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	if filepath.Base(got) != ".env" || !filepath.IsAbs(got) {
		t.Errorf("Find = %q, want absolute path to .env", got)
	}
}
