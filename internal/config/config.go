package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Logger  LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// StorageConfig selects and configures the persistence medium backing the
// exam catalog. Backend is one of "sqlite", "redis" or "fs".
type StorageConfig struct {
	Backend string
	SQLite  SQLiteConfig
	Redis   RedisConfig
	FS      FSConfig
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type FSConfig struct {
	Dir string `yaml:"dir"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("storage.backend", "sqlite")
	viper.SetDefault("storage.sqlite.path", "exambook.db")
	viper.SetDefault("storage.fs.dir", "./data")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Storage: StorageConfig{
			Backend: viper.GetString("storage.backend"),
			SQLite: SQLiteConfig{
				Path: viper.GetString("storage.sqlite.path"),
			},
			Redis: RedisConfig{
				Address:  viper.GetString("storage.redis.address"),
				Password: viper.GetString("storage.redis.password"),
				DB:       viper.GetInt("storage.redis.db"),
			},
			FS: FSConfig{
				Dir: viper.GetString("storage.fs.dir"),
			},
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	// Override with environment variables if set
	if backend := os.Getenv("STORAGE_BACKEND"); backend != "" {
		config.Storage.Backend = backend
	}
	if path := os.Getenv("SQLITE_PATH"); path != "" {
		config.Storage.SQLite.Path = path
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Storage.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Storage.Redis.Password = redisPassword
	}
	if dir := os.Getenv("FS_DIR"); dir != "" {
		config.Storage.FS.Dir = dir
	}

	return config, nil
}
