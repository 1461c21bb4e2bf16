package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (s *ServerConfig) Listen() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	DSN             string `mapstructure:"dsn"`
	LogMode         bool   `mapstructure:"log_mode"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime_minutes"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

func (j *JWTConfig) Expire() time.Duration {
	return time.Duration(j.ExpireHours) * time.Hour
}

type SeedConfig struct {
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ReportConfig struct {
	TransactionLimit    int `mapstructure:"transaction_limit"`
	TransactionLimitMax int `mapstructure:"transaction_limit_max"`
}

type AppConfig struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Seed     SeedConfig     `mapstructure:"seed"`
	Log      LogConfig      `mapstructure:"log"`
	Report   ReportConfig   `mapstructure:"report"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8081)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "pool.db")
	v.SetDefault("database.log_mode", false)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime_minutes", 60)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expire_hours", 168)
	v.SetDefault("seed.admin_username", "")
	v.SetDefault("seed.admin_password", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("report.transaction_limit", 50)
	v.SetDefault("report.transaction_limit_max", 500)
}

// LoadConfig reads path when given, otherwise ./config.yaml if it exists.
// Every key can be overridden by a POOL_ prefixed env, e.g. POOL_DATABASE_DSN.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("POOL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg AppConfig
	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is empty, set POOL_JWT_SECRET")
	}

	if cfg.Report.TransactionLimitMax < cfg.Report.TransactionLimit {
		cfg.Report.TransactionLimitMax = cfg.Report.TransactionLimit
	}

	return &cfg, nil
}

func NewProductionConfig() (*AppConfig, error) {
	return LoadConfig(os.Getenv("POOL_CONFIG"))
}
