package logger

import (
	"github.com/fatih/color"
)

// Package-level printing functions colored by log level. Each behaves like
// fmt.Printf, so call sites pass their own "[INFO] ..." style prefixes and
// trailing newlines.

// Info prints informational messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn prints warnings in bright magenta.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error prints errors in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug prints diagnostic messages in cyan when enabled via Init.
// It defaults to a no-op so packages are safe to use before Init runs.
var Debug = func(format string, a ...any) {}

// Init switches debug output on or off. Called once from the CLI layer
// before any command runs.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
