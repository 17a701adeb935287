package safehold

import "fmt"

// Release coordinates of this build.
const (
	Maj    = 0
	Min    = 1
	Fix    = 0
	Suffix = "-dev"
)

// AppVersion is reported to tendermint in the ABCI handshake. It must be
// bumped whenever the state machine changes in a way that alters results
// for the same transactions.
const AppVersion uint64 = 1

// GitCommit is set with -ldflags at build time.
var GitCommit = ""

// Version returns the release string, with the commit appended when known.
func Version() string {
	v := fmt.Sprintf("v%d.%d.%d%s", Maj, Min, Fix, Suffix)
	if GitCommit == "" {
		return v
	}
	return v + " " + GitCommit
}
