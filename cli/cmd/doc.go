// Package cmd implements the jsxc subcommands.
//
// Each command is a kong command struct with a Run method. Generator settings
// shared by all commands (labels, strict mode, locator) reach Run through the
// context; see [WithOptions].
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)
