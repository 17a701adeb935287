package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/safehold/safehold/x/escrow"
)

func cmdSubmitTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read binary serialized transaction from standard input and submit it. The
command returns once the transaction is part of a block.

When an escrow is created its ID is written out.
`)
		fl.PrintDefaults()
	}
	tmAddrFl := tmAddrFlag(fl)
	fl.Parse(args)

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction from input: %s", err)
	}

	res, err := newClient(*tmAddrFl).SubmitTx(context.Background(), tx)
	if err != nil {
		return fmt.Errorf("cannot broadcast transaction: %s", err)
	}
	if res.Err != nil {
		return fmt.Errorf("transaction failed in block %d: %s", res.Height, res.Err)
	}

	if _, ok := tx.Msg.(*escrow.CreateMsg); ok {
		id, err := fromSequence(res.Data)
		if err != nil {
			return fmt.Errorf("unexpected response: %s", err)
		}
		_, err = fmt.Fprintln(output, id)
		return err
	}
	_, err = fmt.Fprintln(output, res.Log)
	return err
}
