// Package cli provides the interactive CoverMate command-line client.
//
// It wires configuration, the local settings database, the HTTP API
// services, the view models, and an interactive REPL. Typical flow:
// restore the persisted session, prompt for credentials when needed,
// and execute user commands.
//
// Key features:
//   - Register / Login / Logout
//   - Show and update the insurance profile
//   - Fetch personalized recommendations, optionally filtered by category
//
// The REPL is started via App.Run(ctx), which blocks until the user
// exits. See App and runREPL for details.
package cli
