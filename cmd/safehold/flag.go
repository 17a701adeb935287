package main

import (
	"encoding/binary"
	"errors"
	"flag"
	"strconv"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/coin"
)

// flAddress returns an address set by a command line argument, hex or
// bech32 encoded. Zero address if not provided. This function follows
// Go's flag package convention.
func flAddress(fl *flag.FlagSet, name, usage string) *safehold.Address {
	var a safehold.Address
	fl.Var((*addressValue)(&a), name, usage)
	return &a
}

type addressValue safehold.Address

func (a addressValue) String() string {
	if len(a) == 0 {
		return ""
	}
	return safehold.Address(a).String()
}

func (a *addressValue) Set(raw string) error {
	addr, err := safehold.ParseAddress(raw)
	if err != nil {
		return err
	}
	*a = addressValue(addr)
	return nil
}

// flAmount returns an amount set by a command line argument given in
// decimal form. Zero if not provided.
func flAmount(fl *flag.FlagSet, name, usage string) *coin.Amount {
	var a coin.Amount
	fl.Var((*amountValue)(&a), name, usage)
	return &a
}

type amountValue coin.Amount

func (a amountValue) String() string {
	return coin.Amount(a).String()
}

func (a *amountValue) Set(raw string) error {
	amount, err := coin.ParseAmount(raw)
	if err != nil {
		return err
	}
	*a = amountValue(amount)
	return nil
}

// flSeq returns a sequence ID set by a command line argument given as a
// decimal number. Sequence IDs are 8 bytes, big endian, as the orm
// package encodes them.
func flSeq(fl *flag.FlagSet, name, usage string) *[]byte {
	var b []byte
	fl.Var((*seqValue)(&b), name, usage)
	return &b
}

type seqValue []byte

func (s seqValue) String() string {
	if len(s) != 8 {
		return ""
	}
	return strconv.FormatUint(binary.BigEndian.Uint64(s), 10)
}

func (s *seqValue) Set(raw string) error {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return errors.New("sequence must be a decimal number")
	}
	*s = sequenceID(n)
	return nil
}
