package main

import (
	"fmt"
	"io"
	"os"

	orrery "github.com/Mai2117/Sun-Earth-Moon"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	traceCommand string
	traceOut     string
	traceConf    = orrery.TraceConfig{StopOnEclipse: true}
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Run a scripted fast-forward without a window and write the frames as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		traceConf.Command = orrery.CommandFromString(traceCommand)
		if traceConf.Command == orrery.CommandNone && traceCommand != orrery.CommandNone.String() {
			return fmt.Errorf("unknown command %q", traceCommand)
		}
		sim, err := orrery.NewSimulation(conf, logger)
		if err != nil {
			return err
		}

		var w io.Writer = os.Stdout
		if traceOut != "" && traceOut != "-" {
			f, err := os.Create(traceOut)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}

		summary, err := orrery.Trace(sim, w, traceConf)
		if err != nil {
			return err
		}
		logger.Log("level", "notice", "subsys", "trace", "frames", humanize.Comma(int64(summary.Frames)),
			"records", humanize.Comma(int64(summary.Records)), "orbits", summary.Orbits, "last", summary.Last)
		return nil
	},
}

func init() {
	traceCmd.Flags().StringVar(&traceCommand, "command", orrery.CommandAccelerateEarthEclipse.String(), "command applied on the first frame")
	traceCmd.Flags().StringVarP(&traceOut, "out", "o", "-", "output CSV file, - for stdout")
	traceCmd.Flags().IntVar(&traceConf.Frames, "frames", 100000, "maximum number of frames")
	traceCmd.Flags().Float64Var(&traceConf.Step, "step", 1.0/60, "real seconds per frame")
	traceCmd.Flags().IntVar(&traceConf.Every, "every", 60, "write one record every n frames")
	traceCmd.Flags().BoolVar(&traceConf.StopOnEclipse, "stop-on-eclipse", true, "stop at the first eclipse")
}
