package store

import (
	"time"

	"dreammap/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string
	PG      PGConfig
	CH      CHConfig
	RDS     RedisConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int
	PingTimeout    time.Duration
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string
}

// RedisConfig configures redis connectivity
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// ConfigFrom reads SERVICE_PGSQL_*, SERVICE_CLICKHOUSE_* and SERVICE_REDIS_*
func ConfigFrom(c config.Conf, app string) Config {
	pg := c.Prefix("SERVICE_PGSQL_")
	ch := c.Prefix("SERVICE_CLICKHOUSE_")
	rd := c.Prefix("SERVICE_REDIS_")
	return Config{
		AppName: app,
		PG: PGConfig{
			Enabled:        pg.MayBool("ENABLED", false),
			URL:            pg.MayString("URL", ""),
			MaxConns:       int32(pg.MayInt("MAX_CONNS", 10)),
			LogSQL:         pg.MayBool("LOG_SQL", false),
			SlowQueryMs:    pg.MayInt("SLOW_MS", 200),
			ConnectRetries: pg.MayInt("CONNECT_RETRIES", 20),
			PingTimeout:    pg.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		CH: CHConfig{
			Enabled: ch.MayBool("ENABLED", false),
			URL:     ch.MayString("URL", ""),
		},
		RDS: RedisConfig{
			Enabled:  rd.MayBool("ENABLED", false),
			Addr:     rd.MayString("ADDR", "127.0.0.1:6379"),
			Password: rd.MayString("PASSWORD", ""),
			DB:       rd.MayInt("DB", 0),
		},
	}
}
