package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/safehold/safehold/app"
	"github.com/safehold/safehold/commands"
	"github.com/safehold/safehold/commands/server"
	"github.com/tendermint/tendermint/libs/log"
)

func nodeLogger(output io.Writer) log.Logger {
	return log.NewTMLogger(log.NewSyncWriter(output)).With("module", "safehold")
}

func cmdInit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Write the default node configuration and add the app state to the genesis
file created by tendermint init.

Usage: init <address> [<balance>]

The account with the given address receives the balance at genesis.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)
	return server.InitCmd(app.GenInitOptions, nodeLogger(output), *varHome, fl.Args())
}

func cmdStart(input io.Reader, output io.Writer, args []string) error {
	// flags are parsed by the server, on top of the config file
	return server.StartCmd(app.GenerateApp, nodeLogger(output), *varHome, args)
}

func cmdValidate(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Check that the app state of the given genesis files can initialize the
application. The genesis file of the node is used if none is given.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	paths := fl.Args()
	if len(paths) == 0 {
		paths = []string{server.GenesisFile(*varHome)}
	}
	if err := server.ValidateGenesis(app.Initializers(), paths); err != nil {
		return err
	}
	_, err := fmt.Fprintln(output, "genesis is valid")
	return err
}

func cmdTestgen(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Write json and binary encodings of example transactions and models into the
given directory (testdata by default).
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)
	return commands.TestGenCmd(app.Examples(), app.EncodeExample, fl.Args())
}
