package config

import (
	"github.com/spf13/viper"

	pkgconfig "github.com/weiawesome/identifier/pkg/config"
)

type Config struct {
	GRPC  GRPCConfig
	HTTP  HTTPConfig
	Kinds []KindConfig `mapstructure:"kinds"`
	Log   LogConfig
}

type GRPCConfig struct {
	Host string
	Port int
}

type HTTPConfig struct {
	Host    string
	Port    int
	Enabled bool
}

// KindConfig declares one identifier kind. Width defaults to the widest
// width the strategy supports.
type KindConfig struct {
	Name      string `mapstructure:"name"`
	Strategy  string `mapstructure:"strategy"`
	Width     int    `mapstructure:"width"`
	MachineID int64  `mapstructure:"machine_id"` // snowflake
	Epoch     int64  `mapstructure:"epoch"`      // snowflake, unix ms
	Tag       uint32 `mapstructure:"tag"`        // tagged
	Value     string `mapstructure:"value"`      // constant, hex text
}

type LogConfig struct {
	Level  string
	Pretty bool
}

// DefaultKinds is used when no kinds are configured.
func DefaultKinds() []KindConfig {
	return []KindConfig{
		{Name: "uuid", Strategy: "uuidv4"},
		{Name: "ulid", Strategy: "ulid"},
		{Name: "snowflake", Strategy: "snowflake", MachineID: 1, Epoch: 1704067200000},
	}
}

func Load() (*Config, error) {
	return LoadFrom("./config", "config")
}

// LoadFrom reads the named yaml config from dir, applying defaults and
// environment overrides.
func LoadFrom(dir, name string) (*Config, error) {
	v, err := pkgconfig.Load(dir, name)
	if err != nil {
		return nil, err
	}
	return decode(v)
}

// LoadFile reads an explicit config file, applying defaults and
// environment overrides. The file must exist.
func LoadFile(path string) (*Config, error) {
	v, err := pkgconfig.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	// Set defaults
	v.SetDefault("grpc.host", "0.0.0.0")
	v.SetDefault("grpc.port", 50053)
	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8090)
	v.SetDefault("http.enabled", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// Override from environment
	v.BindEnv("grpc.port", "GRPC_PORT")
	v.BindEnv("http.port", "PORT")
	v.BindEnv("http.enabled", "HTTP_ENABLED")
	v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if len(cfg.Kinds) == 0 {
		cfg.Kinds = DefaultKinds()
	}

	return &cfg, nil
}
