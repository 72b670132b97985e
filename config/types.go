package config

import "time"

// ServerConfig contains HTTP API server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// FeedConfig contains the real-time trip-updates feed configuration
type FeedConfig struct {
	URL string `yaml:"url" validate:"required,url"`

	// Format forces the decode path ("json" or "protobuf"). When empty the
	// response Content-Type decides.
	Format string `yaml:"format" validate:"omitempty,oneof=json protobuf"`

	// Basic-auth credentials. Feeds that use a query-string token leave
	// these empty and set APIToken instead.
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	APIToken string `yaml:"apiToken"`

	TimeoutMS int `yaml:"timeoutMS" validate:"gte=0"`
}

// LineConfig identifies the monitored line
type LineConfig struct {
	ID   string `yaml:"id" validate:"required"`
	Name string `yaml:"name"`
}

// StopConfig identifies one end of the monitored journey
type StopConfig struct {
	ID   string `yaml:"id" validate:"required"`
	Name string `yaml:"name"`
}

// PollConfig controls the fetch cycle
type PollConfig struct {
	IntervalSeconds int `yaml:"intervalSeconds" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig `yaml:"server"`
	Feed     FeedConfig   `yaml:"feed" validate:"required"`
	Line     LineConfig   `yaml:"line" validate:"required"`
	Start    StopConfig   `yaml:"startStop" validate:"required"`
	End      StopConfig   `yaml:"endStop" validate:"required"`
	Poll     PollConfig   `yaml:"poll"`
	Timezone string       `yaml:"timezone"`
	LogLevel string       `yaml:"logLevel" validate:"omitempty,oneof=debug info warn error"`

	// Location is resolved from Timezone at load time. All feed timestamps
	// and "is this tomorrow" decisions use this zone, never the host zone.
	Location *time.Location `yaml:"-"`
}

// Timeout returns the feed request timeout as a duration.
func (f FeedConfig) Timeout() time.Duration {
	if f.TimeoutMS <= 0 {
		return 10 * time.Second
	}
	return time.Duration(f.TimeoutMS) * time.Millisecond
}

// Interval returns the poll interval as a duration.
func (p PollConfig) Interval() time.Duration {
	if p.IntervalSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(p.IntervalSeconds) * time.Second
}

// LineName returns the display name of the line, falling back to the id.
func (l LineConfig) LineName() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// StopName returns the display name of the stop, falling back to the id.
func (s StopConfig) StopName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}
