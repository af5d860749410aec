package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	SignUp(ctx context.Context) error
	SignIn(ctx context.Context) error
	Configure(ctx context.Context, sample bool) error
	Dashboard(ctx context.Context) error
	Reconfigure(ctx context.Context) error
	SignOut(ctx context.Context) error
	Goto(ctx context.Context, path string) error
	helpText() string
	text(id string) string
}

// runREPL reads one command per line from reader and dispatches it to a.
//
// Commands:
//
//	signup              create an account
//	signin              sign in to an existing account
//	configure [sample]  store a public key (or the built-in sample key)
//	dashboard           open the dashboard
//	reconfigure         forget the key and configure a new one
//	signout             end the session
//	goto <path>         navigate to a path (/, /signin, /configuration, /dashboard)
//	help                list the commands for the current screen
//	exit | quit         leave the program
//
// Handlers report their own failures to the user, so their errors are
// dropped here, except that end of input or a cancelled context stops the
// loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "stackguard %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(w, a.helpText())

		case "signup":
			err = a.SignUp(ctx)

		case "signin":
			err = a.SignIn(ctx)

		case "configure":
			err = a.Configure(ctx, len(args) > 0 && args[0] == "sample")

		case "dashboard":
			err = a.Dashboard(ctx)

		case "reconfigure":
			err = a.Reconfigure(ctx)

		case "signout":
			err = a.SignOut(ctx)

		case "goto":
			if len(args) == 0 {
				fmt.Fprintln(w, a.text("flow.usage_goto"))
				continue
			}
			err = a.Goto(ctx, args[0])

		case "exit", "quit":
			fmt.Fprintln(w, a.text("flow.bye"))
			return

		default:
			fmt.Fprintln(w, a.text("flow.unknown_command"), cmd)
		}

		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return
		}
	}
}
