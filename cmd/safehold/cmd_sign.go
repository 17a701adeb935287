package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
)

func cmdSignTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Sign given transaction. This is decoding a transaction data from standard
input, adds a signature and writes back to standard output signed transaction
content.

The chain ID and the signer sequence are fetched from the node unless both
are provided.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl  = tmAddrFlag(fl)
		keyPathFl = keyPathFlag(fl)
		chainFl   = fl.String("chain", "", "Chain ID to sign for.")
		seqFl     = fl.Int64("seq", -1, "Sequence of the signer.")
	)
	fl.Parse(args)

	key, err := decodePrivateKey(*keyPathFl)
	if err != nil {
		return fmt.Errorf("cannot load private key: %s", err)
	}

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction: %s", err)
	}

	chainID, seq := *chainFl, *seqFl
	if chainID == "" || seq < 0 {
		c := newClient(*tmAddrFl)
		ctx := context.Background()
		if chainID == "" {
			status, err := c.Status(ctx)
			if err != nil {
				return fmt.Errorf("cannot fetch chain ID: %s", err)
			}
			chainID = status.ChainID
		}
		if seq < 0 {
			if seq, err = c.Nonce(ctx, key.PublicKey().Address()); err != nil {
				return fmt.Errorf("cannot get the next sequence number: %s", err)
			}
		}
	}
	if chainID == "" {
		return errors.New("chain ID is required")
	}

	if err := tx.Sign(key, chainID, seq); err != nil {
		return fmt.Errorf("cannot sign transaction: %s", err)
	}
	_, err = writeTx(output, tx)
	return err
}
