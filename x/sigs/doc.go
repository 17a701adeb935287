/*
Package sigs provides basic authentication
middleware to verify the signatures on the transaction,
and maintain nonces for replay protection.

Every signer has a user record stored under its address. The record holds
the public key and the sequence that the next signature must carry.
*/
package sigs
