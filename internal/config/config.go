package config

import "time"

// ListenAddr is fixed; front-end clients are hardcoded against port 8080.
const ListenAddr = ":8080"

type Duration struct {
	Duration time.Duration
}

type LogConfig struct {
	Mode     string `yaml:"mode"`
	Redact   bool   `yaml:"redact"`
	HashSalt string `yaml:"hash_salt,omitempty"`
}

type HTTPConfig struct {
	ReadHeaderTimeout Duration `yaml:"read_header_timeout"`
	IdleTimeout       Duration `yaml:"idle_timeout"`
	ShutdownTimeout   Duration `yaml:"shutdown_timeout"`
	MaxRequestBytes   int64    `yaml:"max_request_bytes"`
}

type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	ServiceName string  `yaml:"service_name"`
	Endpoint    string  `yaml:"endpoint,omitempty"`
	Insecure    bool    `yaml:"insecure,omitempty"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

type Config struct {
	Log     LogConfig     `yaml:"log"`
	HTTP    HTTPConfig    `yaml:"http"`
	Tracing TracingConfig `yaml:"tracing"`
}
