package auth

import (
	"encoding/json"
	"time"

	"coffeeQuizBot/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type RawConfig struct {
	SessionDuration string `envconfig:"AUTH_SESSION_DURATION"`
	Admins          string `envconfig:"AUTH_ADMINS"`
}

type Config struct {
	SessionDuration time.Duration
	Admins          []ConfiguredAdmin
}

// Validate accepts an empty admin list, the admin commands are then unreachable.
func (c *Config) Validate() *errs.Multi {
	multiErr := errs.NewMulti()

	if c.SessionDuration < 0 {
		multiErr.Errf("AUTH_SESSION_DURATION cannot be negative, got %s", c.SessionDuration)
	}

	for _, u := range c.Admins {
		multiErr.Add(u.Validate())
	}

	return multiErr
}

func (rc *RawConfig) ToConfig() (*Config, *errs.Multi) {
	multiErr := errs.NewMulti()

	cfg := &Config{}

	if rc.SessionDuration != "" {
		sessionDur, err := time.ParseDuration(rc.SessionDuration)
		if err != nil {
			multiErr.Add(errors.Wrapf(err, "failed to parse duration %q", rc.SessionDuration))
		} else {
			cfg.SessionDuration = sessionDur
		}
	}

	if rc.Admins != "" {
		adminsFromConfig := []ConfiguredAdmin{}
		err := json.Unmarshal([]byte(rc.Admins), &adminsFromConfig)
		if err != nil {
			multiErr.Add(errors.Wrap(err, "failed to parse admins from AUTH_ADMINS, JSON list is expected"))
		} else {
			cfg.Admins = adminsFromConfig
		}
	}

	return cfg, multiErr
}

func LoadConfig() (*Config, error) {
	rawCfg := new(RawConfig)
	err := envconfig.Process("auth", rawCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load auth config")
	}

	cfg, convErr := rawCfg.ToConfig()
	if convErr.HasErrors() {
		return nil, convErr
	}

	return cfg, nil
}
