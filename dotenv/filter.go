package dotenv

import (
	"log/slog"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/denv/lang"
)

// filter decides which resolved pairs are kept.
type filter struct {
	prefix  string
	program *vm.Program
}

// filterEnv returns the variables visible to a filter expression.
func filterEnv(p lang.Pair) map[string]any {
	return map[string]any{
		"key":   p.Key,
		"value": p.Value,
		"line":  p.Line,
	}
}

// CompileFilter reports whether src is a valid filter expression.
func CompileFilter(src string) error {
	_, err := compileFilter(src)

	return err
}

func compileFilter(src string) (*vm.Program, error) {
	if src == "" {
		return nil, nil
	}

	program, err := expr.Compile(src,
		expr.Env(filterEnv(lang.Pair{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, ErrFilter.Wrap(err).With(slog.String("source", src))
	}

	return program, nil
}

func (c config) makeFilter() (filter, error) {
	program, err := compileFilter(c.filter)
	if err != nil {
		return filter{}, err
	}

	return filter{prefix: c.prefix, program: program}, nil
}

// keep reports whether p passes the prefix and expression filters.
func (f filter) keep(p lang.Pair) (bool, error) {
	if !strings.HasPrefix(p.Key, f.prefix) {
		return false, nil
	}

	if f.program == nil {
		return true, nil
	}

	out, err := expr.Run(f.program, filterEnv(p))
	if err != nil {
		return false, ErrFilter.Wrap(err).WithLine(p.Line).
			With(slog.String("key", p.Key))
	}

	ok, _ := out.(bool)

	return ok, nil
}
