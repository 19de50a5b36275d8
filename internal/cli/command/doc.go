// Package command provides CLI command definitions for chainmap-driver.
//
// It uses urfave/cli/v2 for command parsing. Configuration is layered as
// defaults, optional YAML file (--config), CHAINMAP_* environment variables
// and finally command-line flags.
package command
