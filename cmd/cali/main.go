package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/cali/internal/cli"
)

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run executes one invocation. Help and version output count as success.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	req, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	app, err := cli.NewApp(ctx, req.Config, outW, errW)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Execute(ctx, req.Command)
}
