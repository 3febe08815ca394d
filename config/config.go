package config

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-redis/redis/v8"
	"gopkg.in/yaml.v3"
)

var ctx = context.Background()

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	TLS      bool   `yaml:"tls"`
}

type MySQLConfig struct {
	DSN string `yaml:"dsn"`
}

// UsersConfig 用户账户相关的校验规则与默认值
type UsersConfig struct {
	NameRegex           string `yaml:"name_regex"`
	NameMaxLength       int    `yaml:"name_max_length"`
	PasswordRegex       string `yaml:"password_regex"`
	EmailMaxLength      int    `yaml:"email_max_length"`
	DefaultRank         string `yaml:"default_rank"`
	DefaultTagBlocklist string `yaml:"default_tag_blocklist"` // 空格分隔的 tag 名称列表
}

type ThumbnailsConfig struct {
	AvatarWidth  int `yaml:"avatar_width"`
	AvatarHeight int `yaml:"avatar_height"`
}

type Config struct {
	MySQL      MySQLConfig       `yaml:"mysql"`
	Redis      RedisConfig       `yaml:"redis"`
	DataURL    string            `yaml:"data_url"`
	Users      UsersConfig       `yaml:"users"`
	Thumbnails ThumbnailsConfig  `yaml:"thumbnails"`
	Privileges map[string]string `yaml:"privileges"` // privilege name -> minimal rank name
}

// Default returns the built-in configuration. Load starts from it, so a
// partial config file only needs to override what it cares about.
func Default() *Config {
	return &Config{
		DataURL: "/data",
		Users: UsersConfig{
			NameRegex:      `^[a-zA-Z0-9_-]{1,32}$`,
			NameMaxLength:  50,
			PasswordRegex:  `^.{5,}$`,
			EmailMaxLength: 200,
			DefaultRank:    "regular",
		},
		Thumbnails: ThumbnailsConfig{
			AvatarWidth:  300,
			AvatarHeight: 300,
		},
		Privileges: map[string]string{
			"users:edit:any:email": "moderator",
		},
	}
}

// Load reads config.yaml from the given directory and applies env overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(path, "config.yaml"))
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// InitRedis 连接 Redis（会话失效通知使用）
func InitRedis(cfg *Config) (*redis.Client, error) {
	opt := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.Redis.TLS {
		opt.TLSConfig = &tls.Config{}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("redis connect failed: %w", err)
	}
	return rdb, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MYSQL_DSN"); v != "" {
		cfg.MySQL.DSN = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = parsed
		}
	}
	if v := os.Getenv("DATA_URL"); v != "" {
		cfg.DataURL = v
	}
}
