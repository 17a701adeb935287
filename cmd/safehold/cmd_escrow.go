package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/app"
	"github.com/safehold/safehold/x/escrow"
)

func cmdCreateEscrow(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for a new escrow. The signer of the transaction becomes
the buyer.
`)
		fl.PrintDefaults()
	}
	var (
		sellerFl = flAddress(fl, "seller", "Address of the seller receiving the funds on completion.")
		amountFl = flAmount(fl, "amount", "Amount the buyer must deposit.")
	)
	fl.Parse(args)

	msg := &escrow.CreateMsg{
		Metadata: &safehold.Metadata{Schema: 1},
		Seller:   *sellerFl,
		Amount:   *amountFl,
	}
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("given data produce an invalid message: %s", err)
	}
	_, err := writeTx(output, &app.Tx{Msg: msg})
	return err
}

func cmdDeposit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction funding an escrow. Must be signed by the buyer and the
amount must equal the escrowed amount.
`)
		fl.PrintDefaults()
	}
	var (
		escrowFl = flSeq(fl, "escrow", "ID of the escrow to fund.")
		amountFl = flAmount(fl, "amount", "Amount to deposit.")
	)
	fl.Parse(args)

	msg := &escrow.DepositMsg{
		Metadata: &safehold.Metadata{Schema: 1},
		EscrowID: *escrowFl,
		Amount:   *amountFl,
	}
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("given data produce an invalid message: %s", err)
	}
	_, err := writeTx(output, &app.Tx{Msg: msg})
	return err
}

func cmdConfirmDelivery(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction confirming the delivery. Must be signed by the seller.
`)
		fl.PrintDefaults()
	}
	escrowFl := flSeq(fl, "escrow", "ID of the escrow.")
	fl.Parse(args)

	return writeEscrowTx(output, &escrow.ConfirmDeliveryMsg{
		Metadata: &safehold.Metadata{Schema: 1},
		EscrowID: *escrowFl,
	})
}

func cmdAcceptDelivery(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction accepting the delivery and releasing the funds to the
seller. Must be signed by the buyer.
`)
		fl.PrintDefaults()
	}
	escrowFl := flSeq(fl, "escrow", "ID of the escrow.")
	fl.Parse(args)

	return writeEscrowTx(output, &escrow.AcceptDeliveryMsg{
		Metadata: &safehold.Metadata{Schema: 1},
		EscrowID: *escrowFl,
	})
}

func cmdRefund(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction returning the funds to the buyer. Must be signed by the
buyer and is accepted only once the refund deadline passed.
`)
		fl.PrintDefaults()
	}
	escrowFl := flSeq(fl, "escrow", "ID of the escrow.")
	fl.Parse(args)

	return writeEscrowTx(output, &escrow.RefundMsg{
		Metadata: &safehold.Metadata{Schema: 1},
		EscrowID: *escrowFl,
	})
}

func writeEscrowTx(output io.Writer, msg safehold.Msg) error {
	if err := msg.Validate(); err != nil {
		return errors.New("escrow ID is required")
	}
	_, err := writeTx(output, &app.Tx{Msg: msg})
	return err
}
