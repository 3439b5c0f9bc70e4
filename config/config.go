package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	HTTPAddr       string        `env:"HTTP_ADDR" envDefault:":8081"`
	MockAPIBaseURL string        `env:"MOCKAPI_BASE_URL" envDefault:"https://68f8fef9deff18f212b85464.mockapi.io"`
	PublicBaseURL  string        `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	ComboRulesFile string        `env:"COMBO_RULES_FILE"`

	StateBackend string `env:"STATE_BACKEND" envDefault:"redis"`
	RedisHost    string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort    string `env:"REDIS_PORT" envDefault:"6379"`

	KafkaBroker   string `env:"KAFKA_BROKER"`
	OrdersTopic   string `env:"ORDERS_TOPIC" envDefault:"orders"`
	StatsGroupID  string `env:"STATS_GROUP_ID" envDefault:"stats-svc"`
	StatsHTTPAddr string `env:"STATS_HTTP_ADDR" envDefault:":8083"`

	GatewayHTTPAddr string `env:"GATEWAY_HTTP_ADDR" envDefault:":8080"`
	LunchSvcURL     string `env:"LUNCH_SVC_URL" envDefault:"http://localhost:8081"`
	StatsSvcURL     string `env:"STATS_SVC_URL" envDefault:"http://localhost:8083"`
	FrontendDir     string `env:"FRONTEND_DIR" envDefault:"./frontend"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME" envDefault:"lunchtime"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	return cfg
}

func (c *Config) PostgresDSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=disable"
}

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func MustInitPostgres(cfg *Config) *sql.DB {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(cfg *Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.OrdersTopic,
		GroupID: cfg.StatsGroupID,
	})
}

// NewKafkaWriter returns nil when no broker is configured; order events are
// then skipped.
func NewKafkaWriter(cfg *Config) *kafka.Writer {
	if cfg.KafkaBroker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    cfg.OrdersTopic,
		Balancer: &kafka.LeastBytes{},
	}
}
