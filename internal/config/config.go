package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/muconnect/internal/protocol"
)

// Duration is a time.Duration that unmarshals from YAML strings like "100s".
type Duration time.Duration

// Get returns the wrapped duration.
func (d Duration) Get() time.Duration {
	return time.Duration(d)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Config holds all configuration for the connect server.
type Config struct {
	// Client plane
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// Limits
	MaxIdleTime         Duration `yaml:"max_idle_time"`
	MaxUnresponsiveTime Duration `yaml:"max_unresponsive_time"`
	MaxPacketSize       int      `yaml:"max_packet_size"`
	MaxRequests         int      `yaml:"max_requests"`
	MaxConnections      int      `yaml:"max_connections"`
	MaxConnectionsPerIP int      `yaml:"max_connections_per_ip"`

	// Behavior
	IgnoreUnknownPackets bool `yaml:"ignore_unknown_packets"`

	// Realm control plane. Port 0 binds an ephemeral port.
	RPCHost string `yaml:"rpc_host"`
	RPCPort int    `yaml:"rpc_port"`

	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error (default: info)
}

// Default returns a Config with the stock defaults.
func Default() Config {
	return Config{
		Host:                "0.0.0.0",
		Port:                2004,
		MaxIdleTime:         Duration(100 * time.Second),
		MaxUnresponsiveTime: Duration(60 * time.Second),
		MaxPacketSize:       protocol.MinPacketSize,
		MaxRequests:         20,
		MaxConnections:      1000,
		MaxConnectionsPerIP: 1,
		RPCHost:             "0.0.0.0",
		RPCPort:             0,
		LogLevel:            "info",
	}
}

// Load reads a YAML config from path, layered over the defaults.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// ClientAddr returns the client plane bind address.
func (c Config) ClientAddr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// RPCAddr returns the realm control plane bind address.
func (c Config) RPCAddr() string {
	return net.JoinHostPort(c.RPCHost, strconv.Itoa(c.RPCPort))
}

// Validate checks the configured values.
func (c Config) Validate() error {
	// Port 0 binds an ephemeral port, useful for embedding.
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.RPCPort < 0 || c.RPCPort > 65535 {
		return fmt.Errorf("rpc port out of range: %d", c.RPCPort)
	}
	if c.MaxPacketSize < protocol.MinPacketSize {
		return fmt.Errorf("max packet size must be at least %d, got %d", protocol.MinPacketSize, c.MaxPacketSize)
	}
	if c.MaxIdleTime <= 0 {
		return fmt.Errorf("max idle time must be positive")
	}
	if c.MaxUnresponsiveTime <= 0 {
		return fmt.Errorf("max unresponsive time must be positive")
	}
	if c.MaxRequests < 1 {
		return fmt.Errorf("max requests must be at least 1, got %d", c.MaxRequests)
	}
	if c.MaxConnections < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", c.MaxConnections)
	}
	if c.MaxConnectionsPerIP < 1 {
		return fmt.Errorf("max connections per ip must be at least 1, got %d", c.MaxConnectionsPerIP)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
