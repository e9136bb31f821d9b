package main

import (
	"os"

	"github.com/conneroisu/textutils/cmd"
	"github.com/conneroisu/textutils/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
