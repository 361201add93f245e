package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Carmen-Shannon/oxy-map/common"
	"github.com/Carmen-Shannon/oxy-map/engine"
	"github.com/Carmen-Shannon/oxy-map/engine/config"
	"github.com/Carmen-Shannon/oxy-map/engine/logger"
	"github.com/Carmen-Shannon/oxy-map/engine/tiling"
)

var (
	configFile string
	latitude   float64
	longitude  float64
	duration   time.Duration
	zoomIn     int
	latency    time.Duration
)

// main registers the commands and executes the root command, exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "oxymap",
		Short:         "headless 3D map view-space runner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a navigation session from the globe down",
		RunE:  runSession,
	}
	runCmd.Flags().Float64Var(&latitude, "lat", 52.52, "start latitude")
	runCmd.Flags().Float64Var(&longitude, "lon", 13.405, "start longitude")
	runCmd.Flags().DurationVar(&duration, "duration", 5*time.Second, "session length")
	runCmd.Flags().IntVar(&zoomIn, "zoom-in", 2, "number of zoom-ins spread over the session")
	runCmd.Flags().DurationVar(&latency, "latency", 20*time.Millisecond, "simulated tile load latency")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE:  printConfig,
	}

	rootCmd.AddCommand(runCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig reads --config, or returns the defaults when it is unset.
func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(configFile)
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(cfg)
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if lv, ok := logger.ParseLevel(cfg.LogLevel); ok {
		logger.SetLevel(lv)
	} else {
		logger.Warnf("unknown log level %q, keeping the default", cfg.LogLevel)
	}
	defer logger.Sync()

	origin := common.NewGeoCoordinate(latitude, longitude)
	if !origin.Valid() {
		return errors.Errorf("coordinate %s out of range", origin)
	}

	s, err := newSession(cfg, origin, tiling.SyntheticLoader{Latency: latency})
	if err != nil {
		return err
	}
	s.scheduleZooms(zoomIn, duration)
	if err := s.nav.Start(origin); err != nil {
		return err
	}

	e := engine.NewEngine(
		engine.WithTickRate(cfg.TickRate),
		engine.WithProfiling(cfg.Profiler),
		engine.WithTickCallback(s.tick),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	if err := e.Run(ctx); err != nil {
		if closeErr := s.nav.Close(); closeErr != nil {
			logger.Warnf("close session: %v", closeErr)
		}
		return err
	}

	report(cmd, s)
	return errors.Wrap(s.nav.Close(), "close session")
}

// report prints the state every space ended the session in.
func report(cmd *cobra.Command, s *session) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "SPACE\tSTATE\tZOOM\tFOCUS\tTILES\tPENDING")
	current := s.nav.Current()
	for i, tiles := range s.tiles {
		state := "inactive"
		if current != nil && i == s.nav.Level() {
			state = current.State().String()
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\t%d\n",
			s.names[i], state, tiles.Zoom(), tiles.Focus(), len(tiles.Loaded()), tiles.Pending())
	}
}
