package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 应用程序配置
type Config struct {
	Server    Server    `yaml:"server"`
	Database  Database  `yaml:"database"`
	Auth      Auth      `yaml:"auth"`
	Generator Generator `yaml:"generator"`
}

// Server 服务器配置
type Server struct {
	Address string `yaml:"address"`
}

// Database 数据库配置
type Database struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// Auth 认证配置
type Auth struct {
	JWTSecret     string `yaml:"jwt_secret"`
	TokenExpiryHr int    `yaml:"token_expiry_hours"`
}

// Generator 流量生成器配置
// 域名、协议、字节上下限都是演示用的参数，没有真实含义，全部可配置
type Generator struct {
	Schedule         string   `yaml:"schedule"` // cron表达式，带秒字段
	Domains          []string `yaml:"domains"`
	Protocols        []string `yaml:"protocols"`
	MinUploadBytes   int64    `yaml:"min_upload_bytes"`
	MaxUploadBytes   int64    `yaml:"max_upload_bytes"`
	MinDownloadBytes int64    `yaml:"min_download_bytes"`
	MaxDownloadBytes int64    `yaml:"max_download_bytes"`
}

// LoadConfig 从文件加载配置
func LoadConfig() (*Config, error) {
	// 1. 尝试从环境变量获取配置文件路径
	configPath := os.Getenv("CONFIG_PATH")

	// 2. 如果环境变量未设置，使用默认路径
	if configPath == "" {
		configPath = "config.yaml"
	}

	// 3. 读取配置文件
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// 4. 解析YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// 5. 验证配置并设置默认值
	applyDefaults(&config)

	if config.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}

	if config.Generator.MaxUploadBytes < config.Generator.MinUploadBytes ||
		config.Generator.MaxDownloadBytes < config.Generator.MinDownloadBytes {
		return nil, fmt.Errorf("generator byte bounds are inverted")
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Server.Address == "" {
		config.Server.Address = "127.0.0.1:8080"
	}

	if config.Database.Driver == "" {
		config.Database.Driver = "sqlite"
	}
	if config.Database.DSN == "" {
		config.Database.DSN = "traffic.db"
	}

	if config.Auth.TokenExpiryHr == 0 {
		config.Auth.TokenExpiryHr = 24
	}

	// 默认每2秒生成一条记录
	if config.Generator.Schedule == "" {
		config.Generator.Schedule = "*/2 * * * * *"
	}
	if len(config.Generator.Domains) == 0 {
		config.Generator.Domains = []string{
			"google.com", "youtube.com", "github.com",
			"netflix.com", "cloudflare.com", "amazon.com",
		}
	}
	if len(config.Generator.Protocols) == 0 {
		config.Generator.Protocols = []string{"HTTPS", "HTTP", "DNS", "QUIC"}
	}
	if config.Generator.MaxUploadBytes == 0 {
		config.Generator.MinUploadBytes = 1024
		config.Generator.MaxUploadBytes = 512 * 1024
	}
	if config.Generator.MaxDownloadBytes == 0 {
		config.Generator.MinDownloadBytes = 1024
		config.Generator.MaxDownloadBytes = 4 * 1024 * 1024
	}
}
