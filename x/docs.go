/*
Package x contains the standard extensions of the application.

Extensions implement common functionality (Handler, Decorator,
etc.) and are combined together in the app package to construct
the escrow application. This package itself only defines the
Authenticator abstraction shared by all of them.

Note that types in exported code will be prefixed by
the package, so follow standard go naming conventions and avoid
stutter. Use eg. `escrow.CreateMsg` in place of `escrow.CreateEscrowMsg`.
*/
package x
