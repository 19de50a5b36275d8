package command

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"
	"go.yaml.in/yaml/v3"

	"github.com/yndnr/chainmap/internal/driver"
	"github.com/yndnr/chainmap/internal/infra/confloader"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Flags:  driverFlags(),
				Action: configShow,
			},
			{
				Name:      "validate",
				Usage:     "Validate a configuration file",
				ArgsUsage: "FILE",
				Action:    configValidate,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(c.App.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}

func configValidate(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		path = ParseGlobalFlags(c).ConfigFile
	}
	if path == "" {
		return fmt.Errorf("config file path required")
	}

	cfg := driver.Default()
	if err := confloader.NewLoader(confloader.WithConfigFile(path)).Load(cfg); err != nil {
		return err
	}
	if err := driver.Verify(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "%s: ok\n", path)
	return nil
}

// driverFlags are the flags that override driver configuration keys.
func driverFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "repeat",
			Aliases: []string{"n"},
			Usage:   "Number of iterations",
		},
		&cli.IntFlag{
			Name:  "capacity",
			Usage: "Bucket count of each constructed map",
		},
		&cli.IntFlag{
			Name:  "rate-limit",
			Usage: "Maximum iterations per second, 0 for unlimited",
		},
		&cli.StringFlag{
			Name:  "metrics-file",
			Usage: "Write Prometheus metrics to this file after the run",
		},
	}
}

// loadConfig loads configuration from defaults, file, environment and flags.
func loadConfig(c *cli.Context) (*driver.Config, error) {
	cfg := driver.Default()

	overrides, err := flagOverrides(c)
	if err != nil {
		return nil, err
	}

	opts := []confloader.Option{confloader.WithOverrides(overrides)}
	if path := ParseGlobalFlags(c).ConfigFile; path != "" {
		opts = append(opts, confloader.WithConfigFile(path))
	}

	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := driver.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// flagOverrides collects explicitly set flags as dotted config keys.
// A positional argument is taken as the repeat count and wins over --repeat.
func flagOverrides(c *cli.Context) (map[string]any, error) {
	overrides := make(map[string]any)

	global := ParseGlobalFlags(c)
	if global.LogLevel != "" {
		overrides["log.level"] = global.LogLevel
	}
	if global.LogFormat != "" {
		overrides["log.format"] = global.LogFormat
	}

	if c.IsSet("repeat") {
		overrides["driver.repeat"] = c.Int("repeat")
	}
	if c.IsSet("capacity") {
		overrides["driver.capacity"] = c.Int("capacity")
	}
	if c.IsSet("rate-limit") {
		overrides["driver.rate_limit"] = c.Int("rate-limit")
	}
	if c.IsSet("metrics-file") {
		overrides["metrics.file"] = c.String("metrics-file")
	}

	if arg := c.Args().First(); arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid repeat count %q: %w", arg, err)
		}
		overrides["driver.repeat"] = n
	}

	return overrides, nil
}
