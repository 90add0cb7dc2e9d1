package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrDatabaseURLRequired = errors.New("DATABASE_URL is required")
	ErrStateSecretRequired = errors.New("STATE_SECRET is required")
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Google  GoogleConfig
	State   StateConfig
	Session SessionConfig
	Slot    SlotConfig
}

type AppConfig struct {
	Port        string
	Env         string
	LogLevel    string
	FrontendURL string
}

type DBConfig struct {
	URL          string
	MaxIdleConns int
	MaxOpenConns int
	AutoMigrate  bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// StateConfig signs the OAuth state parameter.
type StateConfig struct {
	Secret string
	Expiry time.Duration
}

type SessionConfig struct {
	TTL          time.Duration
	CookieSecure bool
}

// SlotConfig describes the bookable grid of a doctor's day.
type SlotConfig struct {
	StartHour int
	EndHour   int
	Minutes   int
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// .env is optional, the environment alone is enough
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	stateExpiry, err := time.ParseDuration(v.GetString("STATE_EXPIRY"))
	if err != nil {
		stateExpiry = 10 * time.Minute
	}

	sessionTTL, err := time.ParseDuration(v.GetString("SESSION_TTL"))
	if err != nil {
		sessionTTL = 30 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:        v.GetString("APP_PORT"),
			Env:         v.GetString("APP_ENV"),
			LogLevel:    v.GetString("LOG_LEVEL"),
			FrontendURL: v.GetString("FRONTEND_URL"),
		},
		DB: DBConfig{
			URL:          v.GetString("DATABASE_URL"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			AutoMigrate:  v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Google: GoogleConfig{
			ClientID:     v.GetString("GOOGLE_CLIENT_ID"),
			ClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  v.GetString("GOOGLE_REDIRECT_URL"),
		},
		State: StateConfig{
			Secret: v.GetString("STATE_SECRET"),
			Expiry: stateExpiry,
		},
		Session: SessionConfig{
			TTL:          sessionTTL,
			CookieSecure: v.GetBool("COOKIE_SECURE"),
		},
		Slot: SlotConfig{
			StartHour: v.GetInt("SLOT_START_HOUR"),
			EndHour:   v.GetInt("SLOT_END_HOUR"),
			Minutes:   v.GetInt("SLOT_MINUTES"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("COOKIE_SECURE", true)
	v.SetDefault("SLOT_START_HOUR", 9)
	v.SetDefault("SLOT_END_HOUR", 17)
	v.SetDefault("SLOT_MINUTES", 30)
}

func (c *Config) validate() error {
	if c.DB.URL == "" {
		return ErrDatabaseURLRequired
	}
	if c.State.Secret == "" {
		return ErrStateSecretRequired
	}
	if c.Slot.Minutes <= 0 || c.Slot.StartHour < 0 || c.Slot.EndHour > 24 || c.Slot.StartHour >= c.Slot.EndHour {
		return errors.New("invalid slot configuration")
	}
	return nil
}
