package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	DataSource DataSourceConfig `mapstructure:"data_source"`
	Database   DatabaseConfig
	Redis      RedisConfig
	Cache      CacheConfig `mapstructure:"cache"`
	Auth       AuthConfig  `mapstructure:"auth"`
	JWT        JWTConfig
	Tracing    TracingConfig    `mapstructure:"tracing"`
	CORS       CORSConfig       `mapstructure:"cors"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	SkillGraph SkillGraphConfig `mapstructure:"skill_graph"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	ForceMigrate bool `mapstructure:"-"`
	MigrateOnly  bool `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// DataSourceConfig 选择课程/用户数据来源：memory（内置模拟数据）或 mysql
type DataSourceConfig struct {
	Type string `mapstructure:"type"`
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	TTLSeconds int  `mapstructure:"ttl_seconds"`
}

func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type AuthConfig struct {
	// 未携带 token 时使用的默认用户（模拟数据中的 currentUser）
	DefaultUserID uint `mapstructure:"default_user_id"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

// SkillGraphConfig 雷达图的静态技能分类与设计得分
type SkillGraphConfig struct {
	DesignScore int            `mapstructure:"design_score"`
	Radar       []RadarSubject `mapstructure:"radar"`
}

type RadarSubject struct {
	Subject string `mapstructure:"subject"`
	Score   int    `mapstructure:"score"`
	Max     int    `mapstructure:"max"`
}

const (
	DataSourceMemory = "memory"
	DataSourceMySQL  = "mysql"
)

// DefaultRadar 技能雷达默认分类，当前与用户数据无关
func DefaultRadar() []RadarSubject {
	return []RadarSubject{
		{Subject: "Research", Score: 25, Max: 100},
		{Subject: "Interaction Design", Score: 47, Max: 100},
		{Subject: "Visual Design", Score: 61, Max: 100},
		{Subject: "Core Qualities", Score: 61, Max: 100},
		{Subject: "Leadership", Score: 46, Max: 100},
		{Subject: "Content Strategy", Score: 30, Max: 100},
	}
}

const DefaultDesignScore = 45

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("data_source.type", DataSourceMemory)
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parsetime", true)
	v.SetDefault("cache.ttl_seconds", 30)
	v.SetDefault("auth.default_user_id", 1)
	v.SetDefault("rate_limit.max_requests", 1000)
	v.SetDefault("rate_limit.window_minutes", 1)
	v.SetDefault("skill_graph.design_score", DefaultDesignScore)
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("SKILL_GRAPH")
	v.AutomaticEnv()

	setDefaults(v)

	// Database
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DATABASE_NAME")

	// JWT
	v.BindEnv("jwt.secret", "JWT_SECRET")

	// Redis
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	v.BindEnv("server.mode", "SERVER_MODE")
	v.BindEnv("data_source.type", "DATA_SOURCE")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.DataSource.Type {
	case DataSourceMemory, DataSourceMySQL:
	default:
		return fmt.Errorf("unknown data source %q, expected %q or %q", c.DataSource.Type, DataSourceMemory, DataSourceMySQL)
	}

	// 生产环境校验 JWT Secret 强度
	if c.Server.Mode == "release" && len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(c.JWT.Secret))
	}

	if len(c.SkillGraph.Radar) == 0 {
		c.SkillGraph.Radar = DefaultRadar()
	}
	for i, s := range c.SkillGraph.Radar {
		if s.Max <= 0 {
			c.SkillGraph.Radar[i].Max = 100
		}
		if s.Score < 0 || s.Score > c.SkillGraph.Radar[i].Max {
			return fmt.Errorf("radar subject %q score %d out of range 0-%d", s.Subject, s.Score, c.SkillGraph.Radar[i].Max)
		}
	}

	if c.RateLimit.MaxRequests <= 0 {
		c.RateLimit.MaxRequests = 1000
	}
	if c.RateLimit.WindowMinutes <= 0 {
		c.RateLimit.WindowMinutes = 1
	}

	return nil
}
