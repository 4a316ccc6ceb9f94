package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	"github.com/Astemirdum/library-circulation/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"CIRCULATION_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"CIRCULATION_HTTP_PORT" default:"8060"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

type Auth struct {
	// JWTSecret switches the API from gateway identity headers to bearer tokens.
	JWTSecret string `envconfig:"JWT_SECRET" json:"-"`
}

type Circulation struct {
	ReservationTTL time.Duration `yaml:"reservationTtl" envconfig:"RESERVATION_TTL" default:"168h"`
}

type Config struct {
	Server      HTTPServer  `yaml:"server"`
	Database    postgres.DB `yaml:"db"`
	Kafka       kafka.Config
	Auth        Auth
	Circulation Circulation
	Log         logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment on top of the options.
func NewConfig(opts ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, opt := range opts {
			opt(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})
	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
