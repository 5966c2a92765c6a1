package orrery

import (
	"io"

	kitlog "github.com/go-kit/kit/log"
)

// NewLogger returns the logfmt logger used across the application.
// Every call site adds its own "level" and "subsys" keys.
func NewLogger(w io.Writer) kitlog.Logger {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	return kitlog.With(klog, "ts", kitlog.DefaultTimestampUTC, "app", "orrery")
}
