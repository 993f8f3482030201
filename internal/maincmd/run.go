package maincmd

import (
	"context"

	"github.com/mna/mainer"
	"github.com/mna/splitmut/internal/script"
)

func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return RunFiles(ctx, stdio, c.Trace, args...)
}

// RunFiles executes the scenario scripts, printing their output to
// stdio.Stdout and their errors to stdio.Stderr.
func RunFiles(ctx context.Context, stdio mainer.Stdio, trace bool, files ...string) error {
	return printError(stdio, script.RunFiles(ctx, stdio.Stdout, trace, files...))
}
