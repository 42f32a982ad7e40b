// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Formats, Document schema, errors and options.

package loader

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
)

// Sentinel errors.
var (
	// ErrUnknownFormat indicates a format name or file extension that no
	// decoder handles.
	ErrUnknownFormat = errors.New("loader: unknown format")

	// ErrMalformed indicates that the file could not be decoded.
	ErrMalformed = errors.New("loader: malformed description")

	// ErrInvalidDescription indicates a decoded description that cannot
	// become a graph (mismatched adjacents/weights, no nodes, ...).
	ErrInvalidDescription = errors.New("loader: invalid description")
)

// Format names an encoding.
type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// ParseFormat maps a user-supplied name to a Format. "auto" and "" both
// mean FormatAuto; "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "hcl":
		return FormatHCL, nil
	}

	return FormatAuto, ErrUnknownFormat
}

// DetectFormat picks a Format from the extension of path.
func DetectFormat(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return FormatAuto, ErrUnknownFormat
	}
	f, err := ParseFormat(ext)
	if err != nil || f == FormatAuto {
		return FormatAuto, ErrUnknownFormat
	}

	return f, nil
}

// Document is the decoded, encoding-independent graph description.
type Document struct {
	Oriented *bool      `json:"oriented,omitempty" yaml:"oriented,omitempty"`
	Nodes    []NodeSpec `json:"nodes" yaml:"nodes"`
}

// NodeSpec describes one node and its outgoing arcs.
type NodeSpec struct {
	ID        string   `json:"id" yaml:"id"`
	Data      int      `json:"data" yaml:"data"`
	X         float64  `json:"x" yaml:"x"`
	Y         float64  `json:"y" yaml:"y"`
	Adjacents []string `json:"adjacents" yaml:"adjacents"`
	Weights   []int    `json:"weights" yaml:"weights"`
}

// Options configures a load.
//
// Format  – encoding; FormatAuto detects it from the file extension.
// Lenient – accept arcs to undeclared nodes.
// Logger  – receives load and reload records; defaults to discard.
type Options struct {
	Format  Format
	Lenient bool
	Logger  *slog.Logger
}

// Option represents a functional option for configuring a load.
type Option func(*Options)

// WithFormat forces an encoding instead of detecting it.
func WithFormat(f Format) Option {
	return func(o *Options) {
		o.Format = f
	}
}

// WithLenient accepts arcs whose target is not a declared node.
func WithLenient() Option {
	return func(o *Options) {
		o.Lenient = true
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("loader: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns auto-detection, strict arcs and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Format: FormatAuto,
		Logger: slog.New(slog.DiscardHandler),
	}
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
