package config

// Service represents one dispatchable entry in the menu catalog.
// - Name: Short CLI-friendly identifier (e.g. "langfuse"), used by `run <name>`.
// - Label: Text shown as the menu row (e.g. "Start Langfuse container").
// - Command: argv-style command executed when the entry is selected.
// Entries are immutable after load; the menu never writes them back.
type Service struct {
	Name    string
	Label   string
	Command []string
}

// Config is the top-level structure returned after loading the catalog,
// either from the built-in defaults or from a services YAML file.
// Order is significant: services are displayed exactly as listed.
type Config struct {
	Services []Service
}
