package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/pathview/config"
)

// parseArgs builds the effective configuration: defaults, then the
// -config file, then every flag given explicitly, then positional
// START END. The bool result asks the caller to exit cleanly (-help).
func parseArgs(args []string, output io.Writer) (*config.Config, bool, error) {
	fs := flag.NewFlagSet("pathview", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
pathview - shortest paths over a graph description file.

Usage:
  pathview [options] [START END]

Options:
`)
		fs.PrintDefaults()
	}

	cfgPath := fs.String("config", "", "Path to a YAML config file.")
	graph := fs.String("graph", config.DefaultGraph, "Graph description file (.json, .yaml, .hcl).")
	format := fs.String("format", config.DefaultFormat, "Graph format: auto, json, yaml or hcl.")
	lenient := fs.Bool("lenient", false, "Accept arcs to undeclared nodes and skip them at query time.")
	start := fs.String("start", config.DefaultStart, "Identifier of the start node.")
	end := fs.String("end", config.DefaultEnd, "Identifier of the end node.")
	dot := fs.String("dot", "", "Write a DOT rendering of the graph and path to this file.")
	logLevel := fs.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error.")
	logFormat := fs.String("log-format", config.DefaultLogFormat, "Log format: text or json.")
	watch := fs.Bool("watch", false, "Keep running and recompute when the graph file changes.")
	metricsAddr := fs.String("metrics-addr", "", "Serve Prometheus metrics on this address (requires -watch).")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
	}

	// Only flags present on the command line override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "graph":
			cfg.Graph = *graph
		case "format":
			cfg.Format = *format
		case "lenient":
			cfg.Lenient = *lenient
		case "start":
			cfg.Query.Start = *start
		case "end":
			cfg.Query.End = *end
		case "dot":
			cfg.Output.DOT = *dot
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		case "watch":
			cfg.Watch = *watch
		case "metrics-addr":
			cfg.Metrics.Addr = *metricsAddr
		}
	})

	switch fs.NArg() {
	case 0:
	case 2:
		cfg.Query.Start, cfg.Query.End = fs.Arg(0), fs.Arg(1)
	default:
		return nil, false, &ExitError{Code: 2, Message: "expected START and END, or neither"}
	}

	if err := config.Validate(cfg); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, false, nil
}
