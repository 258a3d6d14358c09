package envconfig

import (
	"github.com/caarlos0/env/v6"
)

type EngineEnvConfig struct {
	ClickHouseDB string `env:"CLICKHOUSE_DATABASE_URL,notEmpty"`
	NatsConn     string `env:"NATS"`
	RedisURL     string `env:"REDIS_URL"`
	RawSubject   string `env:"RAW_SUBJECT" envDefault:"telemetry.raw"`
	EventSubject string `env:"EVENT_SUBJECT" envDefault:"telemetry.events"`
	Lanes        int    `env:"LANES" envDefault:"8"`
}

func ReadEngineEnv() (*EngineEnvConfig, error) {
	cfg := &EngineEnvConfig{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
