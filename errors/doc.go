/*
Package errors implements the error model shared by every safehold
extension.

Errors are grouped by root errors registered with Register. Each root error
carries an ABCI code that is returned to the client, so the client can act
on the kind of failure instead of parsing the message.

Extensions register their own root errors at start up:

	var ErrNotBuyer = errors.Register(1032, "caller is not the buyer")

Create error instances at the place they happen, with ErrXyz.New or
Wrap/Wrapf, so that a stack trace is recorded at that point. Only the
innermost wrap records a stack trace.

Once you have an error, fmt can give more context:
	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created
*/
package errors
