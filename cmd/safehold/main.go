package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/safehold/safehold"
)

var (
	flagHome = "home"
	varHome  *string
)

func init() {
	defaultHome := env("SAFEHOLD_HOME", filepath.Join(os.ExpandEnv("$HOME"), ".safehold"))
	varHome = flag.String(flagHome, defaultHome, "directory to store node files under. You can use SAFEHOLD_HOME environment variable to set it.")

	flag.CommandLine.Usage = helpMessage
}

// cliCommands is a register of all available commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// A command function is given stdin, stdout and the command line arguments
// following the command name. It reads and writes only to the provided
// input and output, so that commands can be combined into a pipeline:
//
//   $ safehold deposit -escrow 1 -amount 100 \
//       | safehold sign -key buyer.key \
//       | safehold submit
//
var cliCommands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"accept-delivery":  cmdAcceptDelivery,
	"balance":          cmdBalance,
	"confirm-delivery": cmdConfirmDelivery,
	"create-escrow":    cmdCreateEscrow,
	"deposit":          cmdDeposit,
	"escrow":           cmdEscrow,
	"events":           cmdEvents,
	"init":             cmdInit,
	"keyaddr":          cmdKeyaddr,
	"keygen":           cmdKeygen,
	"refund":           cmdRefund,
	"sign":             cmdSignTransaction,
	"start":            cmdStart,
	"submit":           cmdSubmitTransaction,
	"testgen":          cmdTestgen,
	"validate":         cmdValidate,
	"version":          cmdVersion,
	"view":             cmdTransactionView,
}

func helpMessage() {
	fmt.Fprintf(os.Stderr, "%s runs and talks to a two-party escrow node.\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s [-home <dir>] <command> [<flags>]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
	fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		helpMessage()
		os.Exit(2)
	}
	run, ok := cliCommands[flag.Arg(0)]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", flag.Arg(0))
		helpMessage()
		os.Exit(2)
	}
	if err := run(os.Stdin, os.Stdout, flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(cliCommands))
	for name := range cliCommands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	_, err := fmt.Fprintln(out, safehold.Version())
	return err
}

// env returns the value of an environment variable if provided (even if empty)
// or a fallback value.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}
