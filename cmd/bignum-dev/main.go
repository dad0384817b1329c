// Command bignum-dev exercises the bignum arithmetic core: it prints the
// constructor and arithmetic demonstrations, or runs a randomized selfcheck
// of the core against math/big.
package main

import (
	"context"
	"os"

	"github.com/agbru/bignum/internal/app"
	apperrors "github.com/agbru/bignum/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitCode(err))
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
