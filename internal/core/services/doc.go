// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The pipeline is single-threaded: every page session runs to a terminal
// outcome, and each session owns an independent buffer, trie and page.
package services
