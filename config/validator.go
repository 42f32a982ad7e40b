package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/katalvlaran/pathview/loader"
	"github.com/katalvlaran/pathview/logging"
)

// Validate reports every problem in cfg at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Graph == "" {
		errs = append(errs, "graph: path is required")
	}
	if _, err := loader.ParseFormat(cfg.Format); err != nil {
		errs = append(errs, fmt.Sprintf("format: %q is not one of auto, json, yaml, hcl", cfg.Format))
	}
	if cfg.Query.Start == "" {
		errs = append(errs, "query.start: required")
	}
	if cfg.Query.End == "" {
		errs = append(errs, "query.end: required")
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level: %v", err))
	}
	if _, err := logging.ParseFormat(cfg.Log.Format); err != nil {
		errs = append(errs, fmt.Sprintf("log.format: %v", err))
	}
	if cfg.Metrics.Addr != "" {
		if _, _, err := net.SplitHostPort(cfg.Metrics.Addr); err != nil {
			errs = append(errs, fmt.Sprintf("metrics.addr: %v", err))
		}
		if !cfg.Watch {
			errs = append(errs, "metrics.addr: requires watch")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
