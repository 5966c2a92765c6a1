package orrery

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// TraceHeader is the first record written by Trace.
var TraceHeader = []string{
	"frame", "t", "date",
	"earth_x", "earth_y", "earth_z",
	"moon_x", "moon_y", "moon_z",
	"alignment", "motion_stopped", "earth_in_shadow", "moon_in_shadow", "eclipse",
}

// TraceConfig scripts a headless run: one command on the first frame, then fixed steps.
type TraceConfig struct {
	Command       Command
	Frames        int     // hard limit on the number of frames
	Step          float64 // real seconds per frame
	Every         int     // write one record every n frames, eclipse frames are always written
	StopOnEclipse bool
}

// TraceSummary describes how a trace ended.
type TraceSummary struct {
	Frames  int
	Records int
	Orbits  int // full Earth revolutions at the last frame
	Last    Frame
}

// ToText converts a frame into a trace record.
func (f Frame) ToText() []string {
	ff := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	return []string{
		strconv.FormatUint(f.Number, 10), ff(f.Time), f.Date.Format("2006-01-02T15:04:05"),
		ff(f.Positions.Earth.X), ff(f.Positions.Earth.Y), ff(f.Positions.Earth.Z),
		ff(f.Positions.Moon.X), ff(f.Positions.Moon.Y), ff(f.Positions.Moon.Z),
		ff(f.Alignment), strconv.FormatBool(f.Flags.MotionStopped),
		strconv.FormatBool(f.Shadow.EarthInShadow), strconv.FormatBool(f.Shadow.MoonInShadow),
		f.Eclipse.String(),
	}
}

// Trace steps the simulation as scripted and streams the frames as CSV to w.
func Trace(sim *Simulation, w io.Writer, conf TraceConfig) (TraceSummary, error) {
	if conf.Frames <= 0 {
		return TraceSummary{}, fmt.Errorf("%w: trace needs a positive frame count", ErrInvalidConfig)
	}
	if conf.Step <= 0 {
		return TraceSummary{}, fmt.Errorf("%w: trace needs a positive step", ErrInvalidConfig)
	}
	if conf.Every <= 0 {
		conf.Every = 1
	}
	out := csv.NewWriter(w)
	if err := out.Write(TraceHeader); err != nil {
		return TraceSummary{}, err
	}
	var summary TraceSummary
	for i := 0; i < conf.Frames; i++ {
		var f Frame
		if i == 0 {
			f = sim.Step(conf.Step, conf.Command)
		} else {
			f = sim.Step(conf.Step)
		}
		summary.Frames++
		summary.Last = f
		summary.Orbits = sim.Calendar.Orbits(f.Time)
		if i%conf.Every == 0 || f.Eclipse != EclipseNone {
			if err := out.Write(f.ToText()); err != nil {
				return summary, err
			}
			summary.Records++
		}
		if conf.StopOnEclipse && f.Eclipse != EclipseNone {
			break
		}
	}
	out.Flush()
	return summary, out.Error()
}
