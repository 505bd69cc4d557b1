package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/antarctica/mdlib/internal/cli"
	"github.com/antarctica/mdlib/pkg/mdlib"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(mdlib.ExitPanic)
		}
	}()

	if os.Getenv("MDLIB_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(mdlib.ExitCodeForError(err))
	}
}
