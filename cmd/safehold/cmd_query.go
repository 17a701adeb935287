package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
)

func cmdEscrow(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the JSON encoded state of an escrow.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = tmAddrFlag(fl)
		escrowFl = flSeq(fl, "escrow", "ID of the escrow.")
	)
	fl.Parse(args)
	if len(*escrowFl) == 0 {
		return errors.New("escrow ID is required")
	}

	e, err := newClient(*tmAddrFl).Escrow(context.Background(), *escrowFl)
	if err != nil {
		return fmt.Errorf("cannot fetch escrow: %s", err)
	}
	return writeJSON(output, e)
}

func cmdEvents(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the JSON encoded events emitted by an escrow, oldest first.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = tmAddrFlag(fl)
		escrowFl = flSeq(fl, "escrow", "ID of the escrow.")
	)
	fl.Parse(args)
	if len(*escrowFl) == 0 {
		return errors.New("escrow ID is required")
	}

	events, err := newClient(*tmAddrFl).EscrowEvents(context.Background(), *escrowFl)
	if err != nil {
		return fmt.Errorf("cannot fetch events: %s", err)
	}
	return writeJSON(output, events)
}

func cmdBalance(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the balance of an address. Escrow custody addresses are accepted as well.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = tmAddrFlag(fl)
		addrFl   = flAddress(fl, "address", "Address to check.")
	)
	fl.Parse(args)
	if err := addrFl.Validate(); err != nil {
		return fmt.Errorf("invalid address: %s", err)
	}

	amount, err := newClient(*tmAddrFl).Balance(context.Background(), *addrFl)
	if err != nil {
		return fmt.Errorf("cannot fetch balance: %s", err)
	}
	_, err = fmt.Fprintln(output, amount)
	return err
}

func writeJSON(output io.Writer, obj interface{}) error {
	pretty, err := json.MarshalIndent(obj, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot JSON serialize: %s", err)
	}
	_, err = fmt.Fprintln(output, string(pretty))
	return err
}
