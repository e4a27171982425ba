package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	Audit  AuditConfig
	Email  EmailConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BodyLimit    int
}

type DBConfig struct {
	Path           string
	MigrateOnStart bool
}

type RedisConfig struct {
	Address   string
	Password  string
	DB        int
	ResultTTL time.Duration
}

// Enabled reports whether a redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

type AuditConfig struct {
	Path string
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	To       string
	Timeout  time.Duration
}

// Enabled mirrors the notification rule: recipient and credentials must all be set.
func (e EmailConfig) Enabled() bool {
	return e.To != "" && e.User != "" && e.Password != ""
}

type LoggerConfig struct {
	Env   string
	Level string
}

// LoadConfig reads config.yaml from the working directory or ./config.
func LoadConfig() (*Config, error) {
	return Load("")
}

// Load reads configuration from configFile, or searches the default
// locations when it is empty. A missing config file is not an error;
// defaults and environment variables still apply.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if os.Getenv("ENV") == "test" {
			v.AddConfigPath("../../config")
			v.AddConfigPath("../../")
		} else {
			v.AddConfigPath(".")
			v.AddConfigPath("./config")
		}
	}

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if used := v.ConfigFileUsed(); used != "" {
		absPath, _ := filepath.Abs(used)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	dataDir := v.GetString("data_dir")
	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			IdleTimeout:  v.GetDuration("server.idle_timeout"),
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		DB: DBConfig{
			Path:           v.GetString("db.path"),
			MigrateOnStart: v.GetBool("db.migrate_on_start"),
		},
		Redis: RedisConfig{
			Address:   v.GetString("redis.address"),
			Password:  v.GetString("redis.password"),
			DB:        v.GetInt("redis.db"),
			ResultTTL: v.GetDuration("redis.result_ttl"),
		},
		Audit: AuditConfig{
			Path: v.GetString("audit.path"),
		},
		Email: EmailConfig{
			Host:     v.GetString("email.host"),
			Port:     v.GetInt("email.port"),
			User:     v.GetString("email.user"),
			Password: v.GetString("email.password"),
			To:       v.GetString("email.to"),
			Timeout:  v.GetDuration("email.timeout"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
	}

	// Plain environment names used by existing deployments.
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		dataDir = dir
	}
	if config.DB.Path == "" {
		config.DB.Path = filepath.Join(dataDir, "quiz.db")
	}
	if config.Audit.Path == "" {
		config.Audit.Path = filepath.Join(dataDir, "submissions_log.txt")
	}
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		config.Server.Port = p
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		config.DB.Path = dbPath
	}
	if logPath := os.Getenv("LOG_PATH"); logPath != "" {
		config.Audit.Path = logPath
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if host := os.Getenv("EMAIL_HOST"); host != "" {
		config.Email.Host = host
	}
	if port := os.Getenv("EMAIL_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid EMAIL_PORT %q: %w", port, err)
		}
		config.Email.Port = p
	}
	if user := os.Getenv("EMAIL_USER"); user != "" {
		config.Email.User = user
	}
	if pass := os.Getenv("EMAIL_PASS"); pass != "" {
		config.Email.Password = pass
	}
	if to := os.Getenv("EMAIL_TO"); to != "" {
		config.Email.To = to
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", "data")
	v.SetDefault("server.port", 4000)
	v.SetDefault("server.read_timeout", 20*time.Second)
	v.SetDefault("server.write_timeout", 20*time.Second)
	v.SetDefault("server.idle_timeout", 20*time.Second)
	v.SetDefault("server.body_limit", 1024*1024)
	v.SetDefault("db.path", "")
	v.SetDefault("db.migrate_on_start", true)
	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.result_ttl", 24*time.Hour)
	v.SetDefault("audit.path", "")
	v.SetDefault("email.host", "")
	v.SetDefault("email.port", 587)
	v.SetDefault("email.user", "")
	v.SetDefault("email.password", "")
	v.SetDefault("email.to", "")
	v.SetDefault("email.timeout", 30*time.Second)
	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")
}

// GetDSN returns the SQLite connection string with the pragmas the store relies on.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", c.DB.Path)
}
