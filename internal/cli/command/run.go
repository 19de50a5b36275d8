package command

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/chainmap/internal/driver"
	"github.com/yndnr/chainmap/internal/infra/buildinfo"
	"github.com/yndnr/chainmap/internal/telemetry/logger"
	"github.com/yndnr/chainmap/internal/telemetry/metric"
)

// RunCommand returns the run command.
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Construct maps and assign one entry through At",
		ArgsUsage: "[repeat]",
		Flags:     driverFlags(),
		Action:    runDriver,
	}
}

func runDriver(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	log.Debug("starting chainmap-driver",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"config", ParseGlobalFlags(c).ConfigFile)

	parent := c.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := driver.Run(ctx, cfg, log, metric.NewRegistry())
	if err != nil {
		return fmt.Errorf("run %s: %w", res.RunID, err)
	}

	fmt.Fprintf(c.App.Writer, "run %s: %d iterations in %s\n", res.RunID, res.Iterations, res.Elapsed)
	return nil
}
