package main

import (
	"fmt"
	"os"

	permerrors "github.com/alexisbeaulieu97/permissionkit/pkg/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps theme problems to 2 and everything else to 1.
func exitCode(err error) int {
	if permerrors.IsParse(err) || permerrors.IsValidation(err) {
		return 2
	}
	return 1
}
