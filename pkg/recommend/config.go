package recommend

import (
	"coffeeQuizBot/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	DefaultProfile string `envconfig:"RECOMMEND_PROFILE" default:"classic"`
	ProfilesFile   string `envconfig:"RECOMMEND_PROFILES_FILE"`
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.DefaultProfile == "" {
		e.Err("RECOMMEND_PROFILE cannot be empty")
	}

	return e
}

func LoadConfig() (cfg *Config, err error) {
	cfg = new(Config)
	err = envconfig.Process("recommend", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recommend config")
	}

	return cfg, nil
}
