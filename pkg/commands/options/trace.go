package options

import (
	"github.com/spf13/cobra"
)

// TraceOptions
type TraceOptions struct {
	Events  bool
	LogFile string
	Watch   bool
}

func AddTraceArgs(cmd *cobra.Command, o *TraceOptions) {
	cmd.Flags().BoolVar(&o.Events, "events", false,
		"Show the picker event log.")
	cmd.Flags().StringVar(&o.LogFile, "log", "",
		"Write a trace of picker events to this file.")
	cmd.Flags().BoolVar(&o.Watch, "watch", true,
		"Reload placeholder and reset settings when the config file changes.")
}
