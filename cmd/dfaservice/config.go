package main

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// Config is the service configuration.  It can come from a TOML file,
// and command-line flags override it.
type Config struct {
	// Listen is the HTTP address.
	Listen string `toml:"listen"`

	// MaxConns limits concurrent HTTP connections.  Zero means no
	// limit.
	MaxConns int `toml:"max_conns"`

	// Storage is a bbolt filename.  Empty means memory only.
	Storage string `toml:"storage"`

	Websockets bool `toml:"websockets"`

	// ReloadDir holds descriptions to load at startup and on the
	// Reload schedule.
	ReloadDir string `toml:"reload_dir"`

	// Reload is a cron expression.
	Reload string `toml:"reload"`

	Verbose bool `toml:"verbose"`

	MQTT *MQTTConfig `toml:"mqtt"`
}

type MQTTConfig struct {
	Broker    string `toml:"broker"`
	ClientId  string `toml:"client_id"`
	Username  string `toml:"username"`
	Password  string `toml:"password"`
	KeepAlive int    `toml:"keep_alive"`
	InTopic   string `toml:"in_topic"`
	OutTopic  string `toml:"out_topic"`
	QoS       int    `toml:"qos"`
}

func DefaultConfig() *Config {
	return &Config{
		Listen:   ":8080",
		MaxConns: 256,
	}
}

// LoadConfig reads a TOML file over the defaults.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(filename, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", filename)
	}
	if undecoded := md.Undecoded(); 0 < len(undecoded) {
		return nil, errors.Newf("unknown config keys in %s: %v", filename, undecoded)
	}
	if err = cfg.check(); err != nil {
		return nil, errors.Wrapf(err, "config %s", filename)
	}
	return cfg, nil
}

func (c *Config) check() error {
	if c.Reload != "" && c.ReloadDir == "" {
		return errors.New("reload schedule without reload_dir")
	}
	if m := c.MQTT; m != nil {
		if m.Broker == "" || m.InTopic == "" || m.OutTopic == "" {
			return errors.New("mqtt needs broker, in_topic, and out_topic")
		}
		if m.QoS < 0 || 2 < m.QoS {
			return errors.Newf("bad mqtt qos %d", m.QoS)
		}
		if m.KeepAlive == 0 {
			m.KeepAlive = 10
		}
	}
	return nil
}
