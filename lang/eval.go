package lang

import (
	"context"
	"io"
	"iter"
	"log/slog"

	"github.com/ardnew/denv/log"
)

// Option configures an evaluation.
type Option func(*evaluator)

// WithEnvironment sets the [Environment] consulted before the namespace.
// The default is [ProcessEnv]; a nil env is the same as [EmptyEnv].
func WithEnvironment(env Environment) Option {
	return func(e *evaluator) {
		if env == nil {
			env = EmptyEnv
		}

		e.env = env
	}
}

// WithLogger sets the logger used for trace events.
func WithLogger(logger log.Logger) Option {
	return func(e *evaluator) { e.logger = logger }
}

// WithNamespace seeds the running namespace with the contents of ns.
// The seed is copied, so ns itself is never modified.
func WithNamespace(ns *Namespace) Option {
	return func(e *evaluator) { e.seed = ns }
}

// evaluator holds the configuration shared by every pass over content.
type evaluator struct {
	env    Environment
	seed   *Namespace
	logger log.Logger
}

func makeEvaluator(opts ...Option) evaluator {
	e := evaluator{env: ProcessEnv}

	for _, opt := range opts {
		if opt != nil {
			opt(&e)
		}
	}

	return e
}

// Evaluate returns the resolved assignments in content, in file order.
//
// Every pass over the returned sequence classifies and resolves content from
// the beginning with a fresh namespace. A yielded pair has been stored in
// that namespace before it is yielded. The first error ends the sequence;
// it is an [*Error] carrying the offending line number.
func Evaluate(
	ctx context.Context,
	content string,
	opts ...Option,
) iter.Seq2[Pair, error] {
	e := makeEvaluator(opts...)

	return func(yield func(Pair, error) bool) {
		e.run(ctx, content, e.seed.Clone(), yield)
	}
}

// ParseString resolves every assignment in s and returns the resulting
// namespace, including any values seeded with [WithNamespace].
func ParseString(
	ctx context.Context,
	s string,
	opts ...Option,
) (*Namespace, error) {
	e := makeEvaluator(opts...)
	ns := e.seed.Clone()

	var err error

	e.run(ctx, s, ns, func(_ Pair, perr error) bool {
		err = perr

		return perr == nil
	})

	if err != nil {
		return nil, err
	}

	e.logger.TraceContext(ctx, "parse complete", slog.Int("keys", ns.Len()))

	return ns, nil
}

// ParseReader reads all of r and parses it with [ParseString].
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Namespace, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseString(ctx, string(data), opts...)
}

// run resolves each entry of content into ns and yields it.
func (e evaluator) run(
	ctx context.Context,
	content string,
	ns *Namespace,
	yield func(Pair, error) bool,
) {
	for entry, err := range Scan(content) {
		if err != nil {
			e.logger.TraceContext(ctx, "classify failed", slog.Any("error", err))
			yield(Pair{Line: entry.Line}, err)

			return
		}

		value, err := Resolve(entry.Raw, ns, e.env)
		if err != nil {
			err = WrapError(err).WithLine(entry.Line).
				With(slog.String("key", entry.Key))
			e.logger.TraceContext(ctx, "resolve failed", slog.Any("error", err))
			yield(Pair{Key: entry.Key, Line: entry.Line}, err)

			return
		}

		ns.Set(entry.Key, value)

		e.logger.TraceContext(ctx, "resolved",
			slog.Any("entry", entry),
			slog.String("value", value))

		if !yield(Pair{Key: entry.Key, Value: value, Line: entry.Line}, nil) {
			return
		}
	}
}
