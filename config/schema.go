// Package config reads the pathview YAML configuration file.
package config

// Config is the top-level YAML structure.
type Config struct {
	Graph   string      `yaml:"graph"`
	Format  string      `yaml:"format"`
	Lenient bool        `yaml:"lenient"`
	Watch   bool        `yaml:"watch"`
	Query   QueryConf   `yaml:"query"`
	Output  OutputConf  `yaml:"output"`
	Log     LogConf     `yaml:"log"`
	Metrics MetricsConf `yaml:"metrics"`
}

// QueryConf names the two endpoints of the path to find.
type QueryConf struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// OutputConf controls what is written besides the printed path.
type OutputConf struct {
	DOT string `yaml:"dot"` // empty = no DOT file
}

// LogConf selects the slog handler.
type LogConf struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConf configures the Prometheus endpoint.
type MetricsConf struct {
	Addr string `yaml:"addr"` // empty = disabled
}

// Defaults.
const (
	DefaultGraph     = "resources/graph.json"
	DefaultFormat    = "auto"
	DefaultStart     = "0"
	DefaultEnd       = "5"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Graph == "" {
		cfg.Graph = DefaultGraph
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	if cfg.Query.Start == "" {
		cfg.Query.Start = DefaultStart
	}
	if cfg.Query.End == "" {
		cfg.Query.End = DefaultEnd
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}
