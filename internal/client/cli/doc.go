// Package cli provides the interactive IIS command-line client.
//
// It wires configuration, the local session store, the API client and an
// interactive REPL. Typical flow: log in with a student number and password,
// then fetch personal information, the markbook or the group roster. A live
// session can be remembered under a PIN and restored on the next run.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
