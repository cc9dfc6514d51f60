package utils

import (
	"fmt"
	"net"

	"github.com/caarlos0/env/v11"
	"github.com/go-sql-driver/mysql"
)

// Settings is the typed configuration of the states API
type Settings struct {
	Port        string        `env:"API_PORT" envDefault:"8080"`
	CORSOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	MySQL       MySQLSettings `envPrefix:"MYSQL_"`
	SeedOnStart bool          `env:"FUNFACTS_SEED_ON_START"`
	SeedPath    string        `env:"FUNFACTS_SEED_PATH"`
}

// MySQLSettings holds the connection parameters for the fun fact database.
// An empty Database selects the in-memory store.
type MySQLSettings struct {
	User     string `env:"USER" envDefault:"root"`
	Password string `env:"PASSWORD"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"3306"`
	Database string `env:"DATABASE"`
}

// Settings parses the typed settings out of the config values
func (c *Config) Settings() (*Settings, error) {
	var settings Settings
	if err := env.ParseWithOptions(&settings, env.Options{Environment: c.ToMap()}); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	return &settings, nil
}

// Enabled reports whether a database has been configured
func (s MySQLSettings) Enabled() bool {
	return s.Database != ""
}

// DSN formats the settings as a go-sql-driver connection string
func (s MySQLSettings) DSN() string {
	dbConfig := mysql.NewConfig()
	dbConfig.User = s.User
	dbConfig.Passwd = s.Password
	dbConfig.Net = "tcp"
	dbConfig.Addr = net.JoinHostPort(s.Host, s.Port)
	dbConfig.DBName = s.Database
	dbConfig.ParseTime = true

	return dbConfig.FormatDSN()
}
