package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/aussiebroadwan/inversie/internal/inversie/service"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port      int    `yaml:"port"       env:"PORT"       env-default:"8080"`
	Env       string `yaml:"env"        env:"ENV"        env-default:"dev"  env-description:"dev, staging or prod"`
	LogLevel  string `yaml:"log_level"  env:"LOG_LEVEL"  env-default:"info" env-description:"debug, info, warn or error"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"json" env-description:"json or text"`

	DatabaseFile string `yaml:"database_file" env:"DATABASE_FILE" env-default:"inversie.db"`
	PepperFile   string `yaml:"pepper_file"   env:"PEPPER_FILE"   env-default:"pepper"`

	// SessionTTL may only differ from 30m when ENV=dev.
	SessionTTL           time.Duration `yaml:"session_ttl"           env:"SESSION_TTL"           env-default:"30m"`
	ShutdownGracePeriod  time.Duration `yaml:"shutdown_grace_period" env:"SHUTDOWN_GRACE_PERIOD" env-default:"10s"`
	HousekeepingInterval time.Duration `yaml:"housekeeping_interval" env:"HOUSEKEEPING_INTERVAL" env-default:"1h"`

	// StrictTransitions rejects approve/deny of an item that is no longer
	// PENDING with 409. Off restores the rewrite-and-renotify behaviour.
	StrictTransitions         bool `yaml:"strict_transitions"            env:"STRICT_TRANSITIONS"            env-default:"true"`
	RevokeSessionsOnPINChange bool `yaml:"revoke_sessions_on_pin_change" env:"REVOKE_SESSIONS_ON_PIN_CHANGE" env-default:"false"`
	SeedDemoData              bool `yaml:"seed_demo_data"                env:"SEED_DEMO_DATA"                env-default:"false"`
	TrustProxy                bool `yaml:"trust_proxy"                   env:"TRUST_PROXY"                   env-default:"false"`

	// AMQPURL enables the notification relay when set.
	AMQPURL   string `yaml:"amqp_url"   env:"AMQP_URL"`
	AMQPQueue string `yaml:"amqp_queue" env:"AMQP_QUEUE" env-default:"inversie.notifications"`
}

// LoadConfig reads configuration from the environment. A .env file in the
// working directory is loaded first when present, and CONFIG_PATH may name a
// YAML file whose values the environment overrides.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("config: PORT %d out of range", c.Port)
	case c.SessionTTL <= 0:
		return errors.New("config: SESSION_TTL must be positive")
	case c.Env != "dev" && c.SessionTTL != service.DefaultSessionTTL:
		return fmt.Errorf("config: SESSION_TTL is fixed at %s outside dev, got %s", service.DefaultSessionTTL, c.SessionTTL)
	case c.HousekeepingInterval <= 0:
		return errors.New("config: HOUSEKEEPING_INTERVAL must be positive")
	case c.DatabaseFile == "":
		return errors.New("config: DATABASE_FILE is required")
	}
	return nil
}
