package dotenv

import (
	"os"
	"strings"

	"github.com/ardnew/denv/lang"
	"github.com/ardnew/denv/log"
)

// DefaultFilename is the name of the file searched for by [Load].
const DefaultFilename = ".env"

// Option configures loading.
type Option func(config) config

type config struct {
	filename string
	dir      string
	prefix   string
	filter   string
	policy   Policy
	listVars []string
	env      lang.Environment
	setenv   func(key, value string) error
	logger   log.Logger
}

func makeConfig(opts ...Option) config {
	c := config{
		filename: DefaultFilename,
		policy:   SetIfAbsent,
		env:      lang.ProcessEnv,
		setenv:   os.Setenv,
	}

	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	return c
}

// langOptions returns the options used to parse a file.
func (c config) langOptions() []lang.Option {
	return []lang.Option{
		lang.WithEnvironment(c.env),
		lang.WithLogger(c.logger),
	}
}

// WithFilename sets the file name searched for by [Load].
func WithFilename(name string) Option {
	return func(c config) config {
		if name != "" {
			c.filename = name
		}

		return c
	}
}

// WithDir sets the directory where the search of [Load] begins.
// The default is the working directory.
func WithDir(dir string) Option {
	return func(c config) config {
		c.dir = dir

		return c
	}
}

// WithPrefix keeps only the variables whose key begins with prefix.
func WithPrefix(prefix string) Option {
	return func(c config) config {
		c.prefix = prefix

		return c
	}
}

// WithFilter keeps only the variables for which the expr-lang boolean
// expression src holds. An empty src keeps everything.
func WithFilter(src string) Option {
	return func(c config) config {
		c.filter = strings.TrimSpace(src)

		return c
	}
}

// WithPolicy sets how variables already in the environment are treated.
func WithPolicy(p Policy) Option {
	return func(c config) config {
		c.policy = p

		return c
	}
}

// WithListVars names variables, like PATH, whose loaded items are merged
// into an existing value rather than skipped or replaced.
func WithListVars(names ...string) Option {
	return func(c config) config {
		c.listVars = append(c.listVars[:len(c.listVars):len(c.listVars)], names...)

		return c
	}
}

// WithEnvironment sets the environment used to resolve references and to
// decide whether a variable already exists. The default is
// [lang.ProcessEnv].
func WithEnvironment(env lang.Environment) Option {
	return func(c config) config {
		if env == nil {
			env = lang.EmptyEnv
		}

		c.env = env

		return c
	}
}

// WithSetenv sets the function that installs a variable.
// The default is [os.Setenv].
func WithSetenv(fn func(key, value string) error) Option {
	return func(c config) config {
		if fn != nil {
			c.setenv = fn
		}

		return c
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(c config) config {
		c.logger = logger

		return c
	}
}
