package config

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/mitchellh/mapstructure"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/viper"
)

type Postgres struct {
	Host     string `mapstructure:"db_host"`
	Port     string `mapstructure:"db_port"`
	Name     string `mapstructure:"db_name"`
	User     string `mapstructure:"db_user"`
	Password string `mapstructure:"db_password"`
}

func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Name)
}

type Redis struct {
	Host string `mapstructure:"redis_host"`
	Port string `mapstructure:"redis_port"`
}

func (r Redis) Addr() string {
	return r.Host + ":" + r.Port
}

type Kafka struct {
	Enabled     bool     `mapstructure:"kafka_enabled"`
	Brokers     []string `mapstructure:"kafka_broker"`
	OrdersTopic string   `mapstructure:"kafka_orders_topic"`
	GroupID     string   `mapstructure:"kafka_group_id"`
}

// MealService is the configuration of the meal-svc binary.
type MealService struct {
	Addr         string        `mapstructure:"addr"`
	PublicURL    string        `mapstructure:"public_url"`
	MealCacheTTL time.Duration `mapstructure:"meal_cache_ttl"`
	LogFormat    string        `mapstructure:"log_format"`
	LogLevel     string        `mapstructure:"log_level"`

	Postgres `mapstructure:",squash"`
	Redis    `mapstructure:",squash"`
	Kafka    `mapstructure:",squash"`
}

// Storefront is the configuration of the storefront binary.
type Storefront struct {
	Addr           string        `mapstructure:"addr"`
	MealAPIURL     string        `mapstructure:"meal_api_url"`
	Offline        bool          `mapstructure:"offline"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	SessionTTL     time.Duration `mapstructure:"session_ttl"`
	LogFormat      string        `mapstructure:"log_format"`
	LogLevel       string        `mapstructure:"log_level"`
}

func newViper(defaults map[string]interface{}) *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper, out interface{}) error {
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(out, hook); err != nil {
		return fmt.Errorf("unable to decode config: %w", err)
	}
	return nil
}

// LoadMealService reads meal-svc settings from the environment.
func LoadMealService() (*MealService, error) {
	v := newViper(map[string]interface{}{
		"addr":               ":8081",
		"public_url":         "http://localhost:8080",
		"meal_cache_ttl":     "5m",
		"log_format":         "json",
		"log_level":          "info",
		"db_host":            "localhost",
		"db_port":            "5432",
		"db_name":            "bytebite",
		"db_user":            "postgres",
		"db_password":        "",
		"redis_host":         "localhost",
		"redis_port":         "6379",
		"kafka_enabled":      false,
		"kafka_broker":       "localhost:9092",
		"kafka_orders_topic": "orders",
		"kafka_group_id":     "meal-svc-popularity",
	})

	var cfg MealService
	if err := decode(v, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadStorefront reads storefront settings from the environment.
func LoadStorefront() (*Storefront, error) {
	v := newViper(map[string]interface{}{
		"addr":            ":8080",
		"meal_api_url":    "http://localhost:8081/api",
		"offline":         false,
		"request_timeout": "10s",
		"session_ttl":     "2h",
		"log_format":      "json",
		"log_level":       "info",
	})

	var cfg Storefront
	if err := decode(v, &cfg); err != nil {
		return nil, err
	}
	cfg.MealAPIURL = strings.TrimRight(cfg.MealAPIURL, "/")
	return &cfg, nil
}

func MustInitPostgres(cfg Postgres) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg Redis) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	return client
}

func NewKafkaReader(cfg Kafka) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.OrdersTopic,
		GroupID: cfg.GroupID,
	})
}

func NewKafkaWriter(cfg Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.OrdersTopic,
		Balancer: &kafka.LeastBytes{},
	}
}
