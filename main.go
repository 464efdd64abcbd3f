package main

import (
	"service-menu/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The service-menu project is an interactive launcher for development environment services:
//   - Presents a centered, keyboard-driven terminal menu of setup shortcuts
//     (TLS certificate generation, Supabase extras, and the optional service
//     containers: Langfuse, Neo4j, Weaviate, Qdrant, PostgreSQL, pgvector,
//     Sentry, OpenHands, Archon, Agent-Zero)
//   - Reads an optional services YAML file to replace the built-in catalog,
//     falling back to the built-ins when no file is present
//   - Dispatches each selection as a child process that inherits the terminal,
//     so command output is visible exactly as if typed by hand
//   - Offers headless access to the same catalog via `list` and `run`, and an
//     environment probe via `doctor`
//
// Error handling strategy:
//   - A failing service command is reported with a printed message and never
//     stops the menu; the user acknowledges and returns to the list
//   - Configuration problems (unreadable or malformed catalog files) surface
//     before any UI starts and exit with a non-zero status
//
// The commands in the built-in catalog are echo placeholders standing in for
// the real docker/setup invocations; the scripts under scripts/ are their
// intended replacements.
func main() {
	cmd.Execute()
}
