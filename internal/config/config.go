package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	StatsAPI    StatsAPI
	Output      Output
	TelegramBot TelegramBot
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
}

type StatsAPI struct {
	BaseURL   string        `envconfig:"NBA_STATS_BASE_URL" default:"https://stats.nba.com/stats"`
	LeagueID  string        `envconfig:"NBA_LEAGUE_ID" default:"00"`
	DayOffset int           `envconfig:"NBA_DAY_OFFSET" default:"0"`
	Timeout   time.Duration `envconfig:"NBA_HTTP_TIMEOUT" default:"10s"`
	UserAgent string        `envconfig:"NBA_USER_AGENT" default:"Mozilla/5.0 (compatible; nbacli/1.0)"`
}

// Output controls terminal rendering and watch mode.
type Output struct {
	Color         string        `envconfig:"NBA_COLOR" default:"auto"`
	WatchInterval time.Duration `envconfig:"NBA_WATCH_INTERVAL" default:"30s"`
}

// TelegramBot is only required when output is forwarded to a chat.
type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
