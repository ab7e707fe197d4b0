// Package cli provides the interactive Rosetta command-line client.
//
// It wires configuration, the local cache database, the REST gateway, and an
// interactive REPL over the reconciliation services. Typical flow: log in,
// translate, browse history, file items into folders, and let background
// syncs reconcile the cache against the backend.
//
// Key features:
//   - Register / Login / Logout
//   - Record translations (cached immediately, synced in the background)
//   - Browse and refresh history, toggle favorites
//   - Manage folders and saved items
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
