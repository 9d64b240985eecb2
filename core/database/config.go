package database

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds configuration for the database connection.
type Config struct {
	// Enabled turns run recording on. When false no connection is attempted.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name.
	Name string `mapstructure:"name" default:"spreader"`
	// TimeoutSeconds bounds connection setup, reads and writes.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// Timeout returns the configured timeout, defaulting to 10 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DSN renders the MySQL data source name. The password is URL encoded so
// special characters survive the driver's parser.
func (c Config) DSN() string {
	secs := int(c.Timeout().Seconds())
	userInfo := url.UserPassword(c.User, c.Password).String()
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		userInfo, c.Host, c.Port, c.Name, secs, secs, secs)
}
