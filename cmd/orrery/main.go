package main

import (
	"fmt"
	"os"

	orrery "github.com/Mai2117/Sun-Earth-Moon"
	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// This is the orrery launcher: `run` opens the window, `trace` runs a scripted fast-forward headless.

var (
	cfgFile string
	logger  kitlog.Logger
	conf    orrery.Config
)

var rootCmd = &cobra.Command{
	Use:   "orrery",
	Short: "Interactive Sun, Earth and Moon orrery",
	Long: `orrery renders the Sun, Earth and Moon with their orbits over a starfield.

Keys: W/A/S/D and the mouse fly the camera, G fast-forwards to an Earth eclipse,
H to a Moon eclipse, J resets, F toggles fast-forward, P pauses, Escape quits.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = orrery.NewLogger(os.Stderr)
		var err error
		conf, err = orrery.LoadConfig(viper.GetViper(), cfgFile)
		if err != nil {
			return err
		}
		logger.Log("level", "info", "subsys", "config", "file", viper.ConfigFileUsed(), "rate", conf.Clock.BaseRate, "accelerated", conf.Clock.AcceleratedRate, "tolerance", conf.Eclipse.Tolerance)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWindow(conf, logger)
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the orrery window (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWindow(conf, logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./orrery.toml or ~/.orrery/orrery.toml)")
	rootCmd.PersistentFlags().Int64("seed", 0, "starfield seed, 0 for a time-based seed")
	rootCmd.PersistentFlags().Float64("rate", orrery.DefaultBaseRate, "orbital rate in radians per second")
	rootCmd.PersistentFlags().String("follow", "", "body the camera travels with (sun, earth, moon)")
	for key, flag := range map[string]string{"stars.seed": "seed", "clock.base_rate": "rate", "camera.follow": "follow"} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(fmt.Errorf("binding --%s: %w", flag, err))
		}
	}

	rootCmd.AddCommand(runCmd, traceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
