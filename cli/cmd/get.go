package cmd

import (
	"context"
	"fmt"
	"log/slog"
)

// Get prints the resolved value of one dotenv variable.
type Get struct {
	Name string `arg:"" help:"Variable name."`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) error {
	ns, path, err := sourceFrom(ctx).read(ctx)
	if err != nil {
		return err
	}

	value, ok := ns.Lookup(g.Name)
	if !ok {
		return ErrUndefined.With(
			slog.String("name", g.Name),
			slog.String("path", path),
		)
	}

	_, err = fmt.Fprintln(stdout(ctx), value)

	return err
}
