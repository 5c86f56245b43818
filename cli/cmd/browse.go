package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/denv/cli/cmd/browse"
	"github.com/ardnew/denv/log"
)

// Browse interactively searches the resolved dotenv variables.
type Browse struct{}

// Run executes the browse command.
//
// The interface is drawn on stderr so that the selected KEY=VALUE line is
// the only output on stdout.
func (b *Browse) Run(ctx context.Context) error {
	ns, _, err := sourceFrom(ctx).read(ctx)
	if err != nil {
		return err
	}

	return browse.Run(ctx, ns, stdout(ctx), log.Default(),
		tea.WithOutput(stderr(ctx)))
}
