package main

import (
	"errors"
	"io/fs"

	"github.com/gorewood/tweetbook/internal/archive"
	"github.com/gorewood/tweetbook/internal/config"
	"github.com/gorewood/tweetbook/internal/export"
	"github.com/gorewood/tweetbook/internal/output"
	"github.com/gorewood/tweetbook/internal/post"
)

// exitError maps pipeline and config errors to exit-coded errors.
func exitError(err error) *output.ExitError {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	var (
		missing   *config.MissingConfigError
		invalid   *config.InvalidValueError
		readErr   *archive.ReadError
		malformed *archive.MalformedExportError
		record    *post.RecordError
		writeErr  *export.OutputWriteError
	)
	switch {
	case errors.As(err, &missing), errors.As(err, &invalid):
		return output.NewUserErrorWithCause(err.Error(), err)
	case errors.As(err, &readErr) && errors.Is(err, fs.ErrNotExist):
		return output.NewUserErrorWithCause("export not found: "+readErr.Path, err)
	case errors.As(err, &malformed), errors.As(err, &record):
		return output.NewDataErrorWithCause(err.Error(), err)
	case errors.As(err, &readErr), errors.As(err, &writeErr):
		return output.NewSystemErrorWithCause(err.Error(), err)
	default:
		return output.NewUserErrorWithCause(err.Error(), err)
	}
}

// fail reports err through printer and returns it with an exit code attached.
func fail(printer *output.Printer, err error) error {
	exitErr := exitError(err)
	printer.Error(exitErr)
	return exitErr
}
