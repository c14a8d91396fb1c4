package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config estrutura global de configuração da aplicação
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig configuração do servidor HTTP
type ServerConfig struct {
	Port    int        `mapstructure:"port"`
	BaseURL string     `mapstructure:"base_url"`
	CORS    CORSConfig `mapstructure:"cors"`
}

// CORSConfig origens permitidas para o front-end
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// StorageConfig seleção do backend de dados.
// driver: "local" (blob JSON com seed determinístico), "postgres" (GORM)
// ou "rest" (cliente HTTP contra um backend externo)
type StorageConfig struct {
	Driver string             `mapstructure:"driver"`
	Local  LocalStorageConfig `mapstructure:"local"`
	REST   RESTStorageConfig  `mapstructure:"rest"`
}

// LocalStorageConfig backend local (arquivo JSON versionado)
type LocalStorageConfig struct {
	Path string `mapstructure:"path"`
	// RecomputeGrades reaplica a fórmula determinística das notas em toda
	// leitura, sobrescrevendo edições manuais (comportamento herdado do
	// protótipo). Desligue para preservar notas alteradas via API.
	RecomputeGrades bool `mapstructure:"recompute_grades"`
}

// RESTStorageConfig cliente REST (JSON sobre HTTP com bearer token)
type RESTStorageConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	Token        string        `mapstructure:"token"`
	RefreshToken string        `mapstructure:"refresh_token"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// DatabaseConfig PostgreSQL (driver "postgres")
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Name            string `mapstructure:"name"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"sslmode"`
	Timezone        string `mapstructure:"timezone"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // minutos
}

// DSN monta a string de conexão PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig cache do dashboard e blacklist de tokens
type RedisConfig struct {
	Addr      string        `mapstructure:"addr"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	CountsTTL time.Duration `mapstructure:"counts_ttl"`
}

// AuthConfig autenticação JWT
type AuthConfig struct {
	JWTSecret       string        `mapstructure:"jwt_secret"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl"`
}

// LogConfig configuração de log
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load carrega a configuração de arquivo e variáveis de ambiente.
// Prioridade: variável de ambiente > arquivo > padrão
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── Padrões ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.local.path", "school-db-v2.json")
	v.SetDefault("storage.local.recompute_grades", true)
	v.SetDefault("storage.rest.base_url", "http://localhost:8000")
	v.SetDefault("storage.rest.timeout", "10s")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "escola")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "America/Sao_Paulo")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime", 60)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.counts_ttl", "30s")

	v.SetDefault("auth.access_token_ttl", "15m")
	v.SetDefault("auth.refresh_token_ttl", "24h")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── Arquivo de configuração ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── Variáveis de ambiente ──
	v.SetEnvPrefix("ESCOLA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("falha ao ler arquivo de configuração: %w", err)
		}
		// sem arquivo: segue com padrões e variáveis de ambiente
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("falha ao interpretar configuração: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate valida itens críticos de configuração
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("configuração inválida: auth.jwt_secret não pode ser vazio")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("configuração inválida: auth.jwt_secret deve ter ao menos 16 caracteres")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("configuração inválida: server.port deve estar entre 1 e 65535")
	}
	switch c.Storage.Driver {
	case "local", "postgres", "rest":
	default:
		return fmt.Errorf("configuração inválida: storage.driver deve ser local, postgres ou rest")
	}
	return nil
}
