package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bf"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage: bf [options] <file.bf>\n\noptions:\n")
	cmds.FprintUsage(w)
}

// run returns the exit status: 0 on success, 1 on a failed run, 2 on bad usage.
func run(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
) (code int) {
	if len(args) == 0 || strings.HasPrefix(args[len(args)-1], "-") {
		if err := cmds.Execute(args); err != nil {
			fmt.Fprintln(stderr, err)
		}
		usage(stderr)
		return 2
	}
	path := args[len(args)-1]
	if err := cmds.Execute(args[:len(args)-1]); err != nil {
		fmt.Fprintln(stderr, err)
		usage(stderr)
		return 2
	}

	defer func() {
		if p := recover(); p != nil {
			fmt.Fprintf(stderr, "%s: %v\n", path, p)
			code = 1
		}
	}()

	var err error
	dscope.New(
		new(bf.Module),
		modes.ForProduction(),
	).Fork(
		func() logs.Writer {
			return stderr
		},
	).Call(func(
		runFile bf.RunFile,
	) {
		err = runFile(ctx, path, stdin, stdout)
	})
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", path, strings.TrimRight(err.Error(), "\n"))
		return 1
	}
	return 0
}
