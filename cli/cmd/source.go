package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ardnew/denv/dotenv"
	"github.com/ardnew/denv/lang"
	"github.com/ardnew/denv/log"
)

const (
	// defaultFile is the dotenv file read when --file is not given.
	defaultFile = dotenv.DefaultFilename

	// stdinSource is the special source indicator for reading from stdin.
	stdinSource = "-"
)

// Source selects and filters the dotenv file read by every command.
type Source struct {
	File      string   `default:".env" help:"Dotenv file name or path, or '-' for stdin." placeholder:"PATH" short:"f"`
	Dir       string   `help:"Directory where the search for the dotenv file begins." placeholder:"DIR" short:"C" type:"path"`
	Prefix    string   `help:"Keep only variables whose name begins with PREFIX."`
	Filter    string   `help:"Keep only variables for which an expression over key, value and line holds." placeholder:"EXPR"`
	Overwrite bool     `help:"Replace variables already defined in the environment."`
	ListVars  []string `default:"PATH" help:"Variables whose loaded items are prepended to the existing value." name:"list-var" placeholder:"NAME" sep:","`

	stdin io.Reader
}

// policy returns the install policy selected by --overwrite.
func (s *Source) policy() dotenv.Policy {
	if s.Overwrite {
		return dotenv.Overwrite
	}

	return dotenv.SetIfAbsent
}

// options returns the dotenv options selected on the command line.
func (s *Source) options(extra ...dotenv.Option) []dotenv.Option {
	return append([]dotenv.Option{
		dotenv.WithFilename(s.File),
		dotenv.WithDir(s.Dir),
		dotenv.WithPrefix(s.Prefix),
		dotenv.WithFilter(s.Filter),
		dotenv.WithPolicy(s.policy()),
		dotenv.WithListVars(s.ListVars...),
		dotenv.WithLogger(log.Default()),
	}, extra...)
}

// path returns the dotenv file to read.
//
// A file name without directory components is searched for in Dir and each
// of its parents. Any other path is used as given, relative to Dir.
func (s *Source) path() (string, error) {
	switch {
	case s.File == stdinSource:
		return stdinSource, nil

	case s.File == "":
		return dotenv.Find(s.Dir, defaultFile)

	case filepath.Base(s.File) == s.File:
		return dotenv.Find(s.Dir, s.File)

	case filepath.IsAbs(s.File) || s.Dir == "":
		return s.File, nil

	default:
		return filepath.Join(s.Dir, s.File), nil
	}
}

// read parses the selected dotenv file and returns its filtered variables
// along with the path they were read from.
func (s *Source) read(
	ctx context.Context,
	extra ...dotenv.Option,
) (*lang.Namespace, string, error) {
	path, err := s.path()
	if err != nil {
		return nil, "", err
	}

	var ns *lang.Namespace

	if path == stdinSource {
		in := s.stdin
		if in == nil {
			in = os.Stdin
		}

		ns, err = dotenv.Parse(ctx, in, s.options(extra...)...)
	} else {
		ns, err = dotenv.Read(ctx, path, s.options(extra...)...)
	}

	if err != nil {
		return nil, path, err
	}

	log.DebugContext(ctx, "read dotenv source",
		slog.String("path", path),
		slog.Int("variables", ns.Len()),
	)

	return ns, path, nil
}
