package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name string `envconfig:"APP_NAME"`
		CORS struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Auth struct {
		Secret             string `envconfig:"SECRET"`
		TokenExpireMin     int    `envconfig:"TOKEN_EXPIRE_MIN"`
		CookieDomain       string `envconfig:"COOKIE_DOMAIN"`
		AllowedEmailDomain string `envconfig:"ALLOWED_EMAIL_DOMAIN"`
	} `envconfig:"AUTH"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string `envconfig:"MIGRATION_TABLE"`
			Prefix         string `envconfig:"PREFIX"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		MailCheck struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"MAILCHECK"`
	} `envconfig:"EXTERNAL"`
}

// IsProduction reports whether the server runs with production cookie and
// shutdown semantics.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
