package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/safehold/safehold"
)

func cmdTransactionView(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print a transaction read from stdin as JSON, together with the message path
it is routed to. Use it to see which escrow operation and amount you are
about to sign.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction: %s", err)
	}
	view := struct {
		Path string      `json:"path"`
		Tx   interface{} `json:"tx"`
	}{
		Path: safehold.GetPath(tx),
		Tx:   tx,
	}
	return writeJSON(output, view)
}
