// Package cli wires the sitesync root command, configuration loading, and
// structured logging, and registers every subcommand.
package cli
