package config

import (
	"errors"
	"time"
)

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[finexa]"`
}

type DB struct {
	Url            string `envconfig:"URL"`
	MigrationsPath string `envconfig:"MIGRATIONS_PATH" default:"internal/migrations"`
	AutoMigrate    bool   `envconfig:"AUTO_MIGRATE" default:"true"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"10"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Upload struct {
	Dir       string `envconfig:"DIR" default:"uploads"`
	URLPrefix string `envconfig:"URL_PREFIX" default:"/uploads"`
}

type Cors struct {
	AllowOrigins string `envconfig:"ALLOW_ORIGINS" default:"http://localhost:5174"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Jwt       *Jwt       `envconfig:"JWT"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Upload    *Upload    `envconfig:"UPLOAD"`
	Cors      *Cors      `envconfig:"CORS"`
}

// ErrMissingJwtSecret is returned by Validate when no JWT secret is
// configured. The server refuses to start without one.
var ErrMissingJwtSecret = errors.New("config: JWT_SECRET is not set")

// ErrMissingDatabaseUrl is returned by Validate when no database URL is
// configured.
var ErrMissingDatabaseUrl = errors.New("config: DATABASE_URL is not set")

// Validate checks the loaded configuration once at process start so that a
// misconfigured deployment fails with a typed configuration error instead of
// an unrelated runtime failure.
func (a *App) Validate() error {
	if a.Jwt == nil || a.Jwt.Secret == "" {
		return ErrMissingJwtSecret
	}
	if a.DB == nil || a.DB.Url == "" {
		return ErrMissingDatabaseUrl
	}
	return nil
}
