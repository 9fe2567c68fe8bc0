// Package cli provides the interactive blog command-line client.
//
// It wires configuration, the local cache, the backend client, the session
// store and the navigator, then runs a REPL where every command is a page:
// it asks the navigator for its view first, so protected pages refuse
// anonymous or expired sessions before prompting for anything.
//
// A background watcher pings the backend and switches between online and
// offline mode; offline, listings are served from the local cache.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
