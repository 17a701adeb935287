/*
Package app wires the extensions into an ABCI application.

StoreApp keeps the committed state and answers queries, BaseApp adds
transaction processing on top of it. Stack and Application assemble the
default safehold node: signature verification, logging, recovery, metrics
and a savepoint around the escrow and cash handlers.
*/
package app
