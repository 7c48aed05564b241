// config предоставляет структуру конфигурации posts-сервиса и функции
// загрузки из файла/переменных окружения с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл local.yaml из рабочей директории;
//  4. переменные окружения (cleanenv).
type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	Auth     AuthConfig    `yaml:"auth"`
	DB       DBConfig      `yaml:"db"`
	Kafka    KafkaConfig   `yaml:"kafka"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Request time.Duration `yaml:"request" env:"REQUEST_TIMEOUT" env-default:"5s"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8081"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// AuthConfig — параметры верификации чужих access-токенов.
// JWTSecret обязан совпадать с секретом auth-сервиса; расхождение
// проявляется как отказ всех токенов по несовпадению подписи.
// Длина секрета — не меньше 32 байт, см. minJWTSecretLen.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
}

// minJWTSecretLen — минимальная длина JWT-секрета в байтах.
// RFC 7518 требует для HS256 ключ не короче размера хэша (32 байта),
// и go-jose это ограничение соблюдает: с более коротким ключом верификатор
// отвергал бы каждый токен, который auth-сервис (golang-jwt) спокойно
// выпустил и принял сам. Такой секрет отклоняется на загрузке конфигурации.
const minJWTSecretLen = 32

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	DatabaseURL string `yaml:"db_url" env:"DATABASE_URL" env-required:"true"`
}

// KafkaConfig — настройки брокера и топика событий.
// Публикация best-effort: PublishTimeout ограничивает, насколько недоступный
// брокер может задержать обработку запроса.
type KafkaConfig struct {
	Brokers        []string      `yaml:"brokers" env:"KAFKA_BROKERS" env-default:"localhost:9092"`
	Topic          string        `yaml:"topic" env:"KAFKA_TOPIC" env-default:"posts"`
	ConsumerGroup  string        `yaml:"consumer_group" env:"KAFKA_CONSUMER_GROUP" env-default:"posts-service"`
	PublishTimeout time.Duration `yaml:"publish_timeout" env:"KAFKA_PUBLISH_TIMEOUT" env-default:"3s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// После чтения файла ENV-переменные накладываются поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		if err := cfg.validate(); err != nil {
			return nil, err
		}

		return &cfg, nil
	}

	if path != "" {
		return tryRead(path)
	}

	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Auth.JWTSecret) < minJWTSecretLen {
		return fmt.Errorf("jwt secret must be at least %d bytes, got %d", minJWTSecretLen, len(c.Auth.JWTSecret))
	}

	return nil
}
