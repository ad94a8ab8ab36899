package config

import (
	"errors"
	"io/fs"
	"log"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	APIAddress string `envconfig:"API_ADDRESS" default:":8080"`

	// memory keeps all data in process; postgres is the durable store
	StoreDriver string `envconfig:"STORE_DRIVER" default:"postgres"`

	PostgresAddress  string `envconfig:"POSTGRES_DB_ADDRESS" default:"localhost:5432"`
	PostgresUser     string `envconfig:"POSTGRES_USER" default:"healthydev"`
	PostgresPassword string `envconfig:"POSTGRES_PASSWORD"`
	PostgresDB       string `envconfig:"POSTGRES_DB" default:"healthydev"`
	MigrateOnStart   bool   `envconfig:"MIGRATE_ON_START" default:"false"`
	MigrationsDir    string `envconfig:"MIGRATIONS_DIR" default:"./migrations"`

	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL" default:"1h"`

	// IANA zone that decides where "today" starts and ends
	Timezone string `envconfig:"TIMEZONE" default:"UTC"`

	ActivityWindowDays int `envconfig:"ACTIVITY_WINDOW_DAYS" default:"365"`

	KafkaBrokers       []string `envconfig:"KAFKA_BROKERS"`
	KafkaActivityTopic string   `envconfig:"KAFKA_ACTIVITY_TOPIC" default:"healthydev.activity.logged"`
}

func New() *Config {
	once.Do(func() {
		cfg, err := Load("./configs/.env")
		if err != nil {
			log.Fatal("loading config error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Load reads envFile into the environment when it exists and decodes the result.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.New("loading env file error: " + err.Error())
		}
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.New("decoding env error: " + err.Error())
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, errors.New("invalid TIMEZONE: " + err.Error())
	}
	if cfg.ActivityWindowDays < 1 {
		return nil, errors.New("ACTIVITY_WINDOW_DAYS must be positive")
	}
	return &cfg, nil
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
