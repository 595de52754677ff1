package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string
	DBDSN          string
	TemplateDir    string
	StaticDir      string
	LogFile        string
	FixtureSeed    int64
	AMQPURL        string
	AIBaseURL      string
	AIAPIKey       string
	AIModel        string
	AITimeout      time.Duration
	ConfirmDismiss time.Duration
}

// Load reads configuration from environment variables with sane demo
// defaults. A zero FIXTURE_SEED means "random per start".
func Load() Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_DSN", "leafline.db")
	viper.SetDefault("TEMPLATE_DIR", "./web/templates")
	viper.SetDefault("STATIC_DIR", "./web/static")
	viper.SetDefault("LOG_FILE", "./leafline.log")
	viper.SetDefault("FIXTURE_SEED", 0)
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("AI_API_KEY", "")
	viper.SetDefault("AI_MODEL", "gpt-4o-mini")
	viper.SetDefault("AI_TIMEOUT", 10*time.Second)
	viper.SetDefault("CONFIRM_DISMISS", 6*time.Second)
	viper.AutomaticEnv()

	cfg := Config{
		Port:           viper.GetString("PORT"),
		DBDSN:          viper.GetString("DB_DSN"),
		TemplateDir:    viper.GetString("TEMPLATE_DIR"),
		StaticDir:      viper.GetString("STATIC_DIR"),
		LogFile:        viper.GetString("LOG_FILE"),
		FixtureSeed:    viper.GetInt64("FIXTURE_SEED"),
		AMQPURL:        viper.GetString("AMQP_URL"),
		AIBaseURL:      viper.GetString("AI_BASE_URL"),
		AIAPIKey:       viper.GetString("AI_API_KEY"),
		AIModel:        viper.GetString("AI_MODEL"),
		AITimeout:      viper.GetDuration("AI_TIMEOUT"),
		ConfirmDismiss: viper.GetDuration("CONFIRM_DISMISS"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s AI_MODEL=%s AI_TIMEOUT=%s", cfg.Port, cfg.DBDSN, cfg.AIModel, cfg.AITimeout)
	return cfg
}
