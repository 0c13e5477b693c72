package quiz

import (
	"time"

	"coffeeQuizBot/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	SessionTTL time.Duration `envconfig:"QUIZ_SESSION_TTL" default:"24h"`
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.SessionTTL < 0 {
		e.Errf("QUIZ_SESSION_TTL cannot be negative, got %s", c.SessionTTL)
	}

	return e
}

func LoadConfig() (cfg *Config, err error) {
	cfg = new(Config)
	err = envconfig.Process("quiz", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load quiz config")
	}

	return cfg, nil
}
