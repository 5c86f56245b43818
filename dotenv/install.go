package dotenv

import (
	"context"
	"log/slog"
	"os"
	"slices"

	"github.com/ardnew/mung"

	"github.com/ardnew/denv/lang"
)

// Policy determines how a loaded variable that already exists in the
// environment is installed.
type Policy int

const (
	// SetIfAbsent keeps the existing value.
	SetIfAbsent Policy = iota
	// Overwrite replaces the existing value.
	Overwrite
)

func (p Policy) String() string {
	switch p {
	case SetIfAbsent:
		return "set-if-absent"
	case Overwrite:
		return "overwrite"
	default:
		return "unknown"
	}
}

// Install installs the variables of ns according to opts and returns the
// number of variables set. Only [WithPolicy], [WithListVars],
// [WithEnvironment], [WithSetenv], and [WithLogger] apply.
func Install(ctx context.Context, ns *lang.Namespace, opts ...Option) (int, error) {
	return makeConfig(opts...).install(ctx, ns)
}

func (c config) install(ctx context.Context, ns *lang.Namespace) (int, error) {
	n := 0

	for key, value := range ns.All() {
		current, exists := c.env.Lookup(key)

		switch {
		case exists && slices.Contains(c.listVars, key):
			value = mergeList(current, value)

		case exists && c.policy == SetIfAbsent:
			c.logger.DebugContext(ctx, "keep existing variable",
				slog.String("key", key))

			continue
		}

		if err := c.setenv(key, value); err != nil {
			return n, ErrInstall.Wrap(err).With(slog.String("key", key))
		}

		c.logger.TraceContext(ctx, "install variable",
			slog.String("key", key),
			slog.String("policy", c.policy.String()))

		n++
	}

	return n, nil
}

// mergeList prepends the items of loaded to the list current, keeping the
// order of loaded and dropping items of current that loaded already has.
//
// loaded is passed to mung as a single delimited item: mung reverses
// separate prefix items but keeps the order within one.
func mergeList(current, loaded string) string {
	return mung.Make(
		mung.WithSubjectItems(current),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(loaded),
	).String()
}
