// Package cli provides the interactive StackGuard command-line client.
//
// It wires configuration, the local store, the session manager and the route
// guard into a REPL whose prompt shows the current screen. Every command is a
// navigation attempt: the guard decides which of the four screens (sign-up,
// sign-in, configuration, dashboard) is actually shown.
//
// Typical flow: signup or signin, then configure a public key, then the
// dashboard. reconfigure returns to the configuration screen and signout
// returns to sign-up.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends.
package cli
