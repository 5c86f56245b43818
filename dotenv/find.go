package dotenv

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Find returns the path of the first regular file called name in dir or
// one of its parents, searching up to the filesystem root.
// An empty dir means the working directory.
func Find(dir, name string) (string, error) {
	if dir == "" {
		dir = "."
	}

	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", ErrNotFound.Wrap(err).With(slog.String("name", name))
	}

	start := dir

	for {
		path := filepath.Join(dir, name)

		info, err := os.Stat(path)

		switch {
		case err == nil && info.Mode().IsRegular():
			return path, nil

		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", ErrNotFound.Wrap(err).With(slog.String("path", path))
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound.With(
				slog.String("name", name),
				slog.String("dir", start),
			)
		}

		dir = parent
	}
}
