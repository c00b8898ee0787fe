package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuracion del servicio.
type Config struct {
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL   string `env:"DATABASE_URL,required,notEmpty"`
	JWTSecret     string `env:"JWT_SECRET,required,notEmpty"`
	JWTIssuer     string `env:"JWT_ISSUER" envDefault:"lifemap-auth"`
	SMTPHost      string `env:"SMTP_HOST"`
	SMTPPort      int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser      string `env:"SMTP_USER"`
	SMTPPass      string `env:"SMTP_PASS"`
	SMTPFrom      string `env:"SMTP_FROM"`
	SMTPFromName  string `env:"SMTP_FROM_NAME" envDefault:"LifeMap"`
	SMTPUseTLS    bool   `env:"SMTP_USE_TLS" envDefault:"false"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Destinatario de los avisos de nuevas solicitudes de mentoria.
	MentorshipNotifyEmail string   `env:"MENTORSHIP_NOTIFY_EMAIL"`
	AdminUserIDs          []string `env:"ADMIN_USER_IDS" envSeparator:","`

	StatsRefreshMinutes     int `env:"STATS_REFRESH_MINUTES" envDefault:"5"`
	SubmissionWindowMinutes int `env:"SUBMISSION_WINDOW_MINUTES" envDefault:"10"`
	SubmissionMax           int `env:"SUBMISSION_MAX" envDefault:"5"`
}

// LoadConfig carga la configuracion desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
