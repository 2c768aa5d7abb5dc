package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/lvlath-euclid/internal/cli"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the root command. The solver is bounded by its own time
// limit, so no signal context is installed; SIGINT keeps its default action.
func run(ctx context.Context) error {
	c := cli.New(os.Stderr, cli.LogInfo)

	return c.RootCommand().ExecuteContext(ctx)
}
