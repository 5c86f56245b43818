package dotenv

import (
	"context"
	"io"
	"iter"
	"log/slog"
	"maps"
	"os"
	"slices"
	"sync"

	"github.com/ardnew/denv/lang"
)

// Load finds the dotenv file, parses it, and installs its variables.
// It returns the path of the file that was loaded.
func Load(ctx context.Context, opts ...Option) (string, error) {
	c := makeConfig(opts...)

	path, err := Find(c.dir, c.filename)
	if err != nil {
		return "", err
	}

	return path, c.loadFile(ctx, path)
}

// LoadFile parses the dotenv file at path and installs its variables.
func LoadFile(ctx context.Context, path string, opts ...Option) error {
	return makeConfig(opts...).loadFile(ctx, path)
}

// Read parses the dotenv file at path and returns its filtered variables
// without installing them.
func Read(ctx context.Context, path string, opts ...Option) (*lang.Namespace, error) {
	return makeConfig(opts...).read(ctx, path)
}

// Iter returns the filtered variables of the dotenv file at path in file
// order, resolving each one as the sequence is consumed.
func Iter(
	ctx context.Context,
	path string,
	opts ...Option,
) (iter.Seq2[lang.Pair, error], error) {
	c := makeConfig(opts...)

	f, err := c.makeFilter()
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrOpen.Wrap(err).With(slog.String("path", path))
	}

	pairs := lang.Evaluate(ctx, string(content), c.langOptions()...)

	return func(yield func(lang.Pair, error) bool) {
		for p, err := range pairs {
			if err != nil {
				yield(p, lang.WrapError(err).With(slog.String("path", path)))

				return
			}

			ok, err := f.keep(p)
			if err != nil {
				yield(p, err)

				return
			}

			if ok && !yield(p, nil) {
				return
			}
		}
	}, nil
}

func (c config) loadFile(ctx context.Context, path string) error {
	ns, err := c.read(ctx, path)
	if err != nil {
		return err
	}

	n, err := c.install(ctx, ns)
	if err != nil {
		return lang.WrapError(err).With(slog.String("path", path))
	}

	c.logger.DebugContext(ctx, "loaded dotenv file",
		slog.String("path", path),
		slog.Int("defined", ns.Len()),
		slog.Int("installed", n))

	return nil
}

func (c config) read(ctx context.Context, path string) (*lang.Namespace, error) {
	f, err := c.makeFilter()
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrOpen.Wrap(err).With(slog.String("path", path))
	}

	ns, err := c.parse(ctx, string(content), f)
	if err != nil {
		return nil, lang.WrapError(err).With(slog.String("path", path))
	}

	return ns, nil
}

// Parse reads all of r and returns its filtered variables without
// installing them.
func Parse(ctx context.Context, r io.Reader, opts ...Option) (*lang.Namespace, error) {
	c := makeConfig(opts...)

	f, err := c.makeFilter()
	if err != nil {
		return nil, err
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, lang.ErrReadInput.Wrap(err)
	}

	return c.parse(ctx, string(content), f)
}

func (c config) parse(
	ctx context.Context,
	content string,
	f filter,
) (*lang.Namespace, error) {
	ns := lang.NewNamespace()
	line := make(map[string]int)

	for p, err := range lang.Evaluate(ctx, content, c.langOptions()...) {
		if err != nil {
			return nil, err
		}

		ns.Set(p.Key, p.Value)
		line[p.Key] = p.Line
	}

	if f.prefix == "" && f.program == nil {
		return ns, nil
	}

	out := lang.NewNamespace()

	for key, value := range ns.All() {
		ok, err := f.keep(lang.Pair{Key: key, Value: value, Line: line[key]})
		if err != nil {
			return nil, err
		}

		if ok {
			out.Set(key, value)
		}
	}

	return out, nil
}

// loadOnce loads the default dotenv file the first time it is called.
var loadOnce = sync.OnceValue(func() error {
	_, err := Load(context.Background())

	return err
})

// Var loads the default dotenv file once per process, then returns the
// value of the environment variable name.
//
// A missing or malformed dotenv file is not an error; only an undefined
// variable is.
func Var(name string) (string, error) {
	_ = loadOnce()

	value, ok := os.LookupEnv(name)
	if !ok {
		return "", ErrUndefined.With(slog.String("name", name))
	}

	return value, nil
}

// Vars loads the default dotenv file once per process, then returns a
// snapshot of the process environment sorted by name.
func Vars() iter.Seq2[string, string] {
	_ = loadOnce()

	env := lang.EnvironEnv(os.Environ())

	return func(yield func(string, string) bool) {
		for _, key := range slices.Sorted(maps.Keys(env)) {
			if !yield(key, env[key]) {
				return
			}
		}
	}
}

// LoadError returns the error, if any, from the load performed by [Var]
// and [Vars].
func LoadError() error { return loadOnce() }
