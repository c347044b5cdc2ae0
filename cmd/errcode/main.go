// Command errcode inspects error codes of either backend and keeps a journal of
// the ones it is told to record.
package main

import (
	"fmt"
	"os"

	"codeberg.org/mutker/errcode/internal/errors"
	"codeberg.org/mutker/errcode/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.ErrorWithCode(appError(err)).Msg("Command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// appError returns the app error in err's chain. Anything else is an
// ErrInternal wrapping err.
func appError(err error) errors.Error {
	var appErr errors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return errors.New().Wrap(errors.ErrInternal, err)
}
