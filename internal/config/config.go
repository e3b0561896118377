package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LATIX_LOG_LEVEL" env-default:"info"`
	Storage  Storage `yaml:"storage"`
	Redis    Redis   `yaml:"redis"`
}

type Storage struct {
	Driver     string `yaml:"driver" env:"LATIX_STORAGE_DRIVER" env-default:"file"`
	Slot       string `yaml:"slot" env:"LATIX_STORAGE_SLOT" env-default:"latix"`
	FileDir    string `yaml:"file-dir" env:"LATIX_STORAGE_FILE_DIR" env-default:"."`
	SQLitePath string `yaml:"sqlite-path" env:"LATIX_STORAGE_SQLITE_PATH" env-default:"latix.db"`
}

type Redis struct {
	Host string `yaml:"host" env:"LATIX_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"LATIX_REDIS_PORT" env-default:"6379"`
}

// Load - reads the YAML file at path, then applies environment overrides.
// An empty path reads the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
