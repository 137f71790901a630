package configuration

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"finflix/infrastructure/logger"

	"github.com/spf13/viper"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	App         App         `mapstructure:"app"`
	Database    Database    `mapstructure:"database"`
	RedisClient RedisClient `mapstructure:"redisClient"`
	Logger      Logger      `mapstructure:"logger"`
	Cors        Cors        `mapstructure:"cors"`
}

type App struct {
	Port        int           `mapstructure:"port"`
	SecretKey   string        `mapstructure:"secretKey"`
	AdminKey    string        `mapstructure:"adminKey"`
	TokenTTL    time.Duration `mapstructure:"tokenTTL"`
	TLSEnabled  bool          `mapstructure:"tlsEnabled"`
	TLSCertFile string        `mapstructure:"tlsCertFile"`
	TLSKeyFile  string        `mapstructure:"tlsKeyFile"`
}

type Database struct {
	Driver string `mapstructure:"driver"`
	Mongo  Db     `mapstructure:"mongo"`
}

type Db struct {
	URI      string `mapstructure:"uri"`
	Name     string `mapstructure:"name"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

type RedisClient struct {
	Enabled  bool          `mapstructure:"enabled"`
	Host     string        `mapstructure:"host"`
	Port     string        `mapstructure:"port"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type Logger struct {
	Format string `mapstructure:"format"`
	Level  string `mapstructure:"level"`
	ToFile bool   `mapstructure:"toFile"`
}

type Cors struct {
	AllowOrigins []string `mapstructure:"allowOrigins"`
}

// LoadConfig reads config.json (or config-$ENV.json) from the working
// directory or its parents, then applies environment overrides. A missing
// config file is not an error: defaults plus environment are enough to run.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(configName())
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("../")
	v.AddConfigPath("../../")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		logger.GetLogger().Warn("Config file not found, using defaults and environment")
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	applyEnv(&c)

	if c.App.SecretKey == "" {
		return nil, errors.New("app.secretKey is empty; set JWT_SECRET")
	}
	logger.GetLogger().
		WithField("config", configName()).
		WithField("driver", c.Database.Driver).
		Info("Config set up successfully")
	return &c, nil
}

func configName() string {
	name := "config"
	if env := os.Getenv("ENV"); env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", 10001)
	v.SetDefault("app.tokenTTL", 720*time.Hour)
	v.SetDefault("database.driver", DriverMongo)
	v.SetDefault("database.mongo.name", "finflix")
	v.SetDefault("database.mongo.host", "localhost")
	v.SetDefault("database.mongo.port", "27017")
	v.SetDefault("redisClient.host", "localhost")
	v.SetDefault("redisClient.port", "6379")
	v.SetDefault("redisClient.ttl", 10*time.Minute)
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.level", "info")
	v.SetDefault("cors.allowOrigins", []string{"http://localhost:3000"})
}

// applyEnv lets the conventional variable names override the file.
func applyEnv(c *Config) {
	if v := firstEnv("JWT_SECRET", "SECRET_KEY"); v != "" {
		c.App.SecretKey = v
	}
	if v := os.Getenv("ADMIN_KEY"); v != "" {
		c.App.AdminKey = v
	}
	if v := firstEnv("APP_PORT", "PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.App.Port = p
		}
	}
	if c.App.Port == 0 {
		c.App.Port = 10001
	}
	if v := os.Getenv("TLS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.App.TLSEnabled = b
		}
	}
	if v := os.Getenv("TLS_CERT_FILE"); v != "" {
		c.App.TLSCertFile = v
	}
	if v := os.Getenv("TLS_KEY_FILE"); v != "" {
		c.App.TLSKeyFile = v
	}

	if v := os.Getenv("DB_DRIVER"); v != "" {
		c.Database.Driver = strings.ToLower(v)
	}
	if v := os.Getenv("MONGO_DB_URL"); v != "" {
		c.Database.Mongo.URI = v
	}
	if v := os.Getenv("MONGO_DB_NAME"); v != "" {
		c.Database.Mongo.Name = v
	}

	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.RedisClient.Host = v
		c.RedisClient.Enabled = true
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		c.RedisClient.Port = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.RedisClient.Password = v
	}
}

// MongoURI returns the configured connection string, building one from
// host, port and credentials when no URI is given.
func (d Db) MongoURI() string {
	if d.URI != "" {
		return d.URI
	}
	if d.User != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s", d.User, d.Password, d.Host, d.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s", d.Host, d.Port)
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
