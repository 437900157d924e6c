package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

// DataConfig points at the presence and metadata sources.
// XmlPath may be empty: users then simply lack name and avatar.
type DataConfig struct {
	CsvPath   string `yaml:"csv" mapstructure:"csv" validate:"required"`
	XmlPath   string `yaml:"xml" mapstructure:"xml"`
	RemoteXml string `yaml:"remoteXml" mapstructure:"remoteXml"`
}

type CacheConfig struct {
	TTL               time.Duration `yaml:"ttl" validate:"required|min:1"`
	ResponseCache     bool          `yaml:"responseCache"`
	ResponseCacheSize int           `yaml:"responseCacheSize"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type FetchConfig struct {
	Timeout  time.Duration `yaml:"timeout"`
	Interval time.Duration `yaml:"interval"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server        `yaml:"webServer"`
	Logger    LoggerConfig  `yaml:"logger"`
	Data      DataConfig    `yaml:"data"`
	Cache     CacheConfig   `yaml:"cache"`
	Metrics   MetricsConfig `yaml:"metrics"`
	Fetch     FetchConfig   `yaml:"fetch"`
}
