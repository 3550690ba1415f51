package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Cache    CacheConfig    `yaml:"cache"`
	Upload   UploadConfig   `yaml:"upload"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type CacheConfig struct {
	TripsTTLSeconds int `yaml:"trips_ttl_seconds"`
}

type UploadConfig struct {
	Dir       string `yaml:"dir"`
	MaxSizeMB int64  `yaml:"max_size_mb"`
}

// MaxSizeBytes returns the upload cap in bytes, defaulting to 64 MiB.
func (u UploadConfig) MaxSizeBytes() int64 {
	if u.MaxSizeMB <= 0 {
		return 64 << 20
	}
	return u.MaxSizeMB << 20
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Upload.Dir == "" {
		cfg.Upload.Dir = "uploads"
	}

	return &cfg, nil
}
