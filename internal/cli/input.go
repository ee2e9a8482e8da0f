package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/roach88/cyclejson/internal/ir"
	"github.com/roach88/cyclejson/internal/jsonenc"
	"github.com/roach88/cyclejson/internal/load"
)

// stdinPath is the input argument that reads the document from stdin.
const stdinPath = "-"

// readInput loads the document named by path, or stdin for "-".
func readInput(cmd *cobra.Command, path, format string) (ir.Value, error) {
	f, err := load.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	logger := loggerFromContext(cmd.Context())
	logger.Debug("loading input", "path", path, "format", f)

	if path == stdinPath {
		return load.Reader(cmd.InOrStdin(), f, "stdin")
	}
	return load.File(path, f)
}

// sourceName is the name recorded for an input argument.
func sourceName(path string) string {
	if path == stdinPath {
		return "stdin"
	}
	return path
}

// outputLoadError reports a loader error. Loader failures are command
// errors (exit code 2).
func outputLoadError(formatter *OutputFormatter, err error) error {
	var le *load.Error
	if errors.As(err, &le) {
		msg := le.Message
		if le.Err != nil {
			msg += ": " + le.Err.Error()
		}
		return outputError(formatter, ExitCommandError, le.Code, msg, nil)
	}
	return outputError(formatter, ExitCommandError, ErrCodeGeneric, err.Error(), nil)
}

// outputEncodeError reports an encoder error. Encoding failures exit with
// code 1.
func outputEncodeError(formatter *OutputFormatter, err error) error {
	var ee *jsonenc.EncodeError
	if !errors.As(err, &ee) {
		return outputError(formatter, ExitFailure, ErrCodeEncode, err.Error(), nil)
	}

	code := ErrCodeEncode
	if ee.Code == jsonenc.ErrCodeCircularStructure {
		code = ErrCodeUnresolvedCycle
	}
	details := map[string]string{
		"kind": string(ee.Code),
		"key":  ee.Key,
		"type": ee.Type,
	}
	return outputError(formatter, ExitFailure, code, ee.Message, details)
}
