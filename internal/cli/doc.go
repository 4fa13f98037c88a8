// Package cli provides the interactive skilltrack console client.
//
// It wires configuration, the JSON store, the tracker service and the feed
// client into a numbered menu loop. Typical flow: load the store once at
// startup, keep it in memory, persist after every mutation, and render
// read-only reports on demand.
//
// The menu is started via App.Run(ctx), which blocks until the user exits.
// See App, runMenu, and the prompt helpers in input.go for details.
package cli
