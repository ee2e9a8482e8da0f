package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Execute runs the cyclejson CLI with args and returns the process exit
// code. Errors already reported by a command (ExitError) are not printed
// again; anything else, such as a usage error from flag parsing, is
// printed to stderr and treated as a command error.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintln(stderr, "Error:", err)
	return ExitCommandError
}
