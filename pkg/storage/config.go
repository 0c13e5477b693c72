package storage

import (
	"coffeeQuizBot/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const (
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

type Config struct {
	Driver string `envconfig:"STORAGE_DRIVER" default:"redis"`
}

type RedisConfig struct {
	Addr string `envconfig:"REDIS_ADDR"`
	Pass string `envconfig:"REDIS_PASS"`
	DB   int    `envconfig:"REDIS_DB" default:"0"`
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.Driver != DriverRedis && c.Driver != DriverMemory {
		e.Errf("STORAGE_DRIVER must be %q or %q, got %q", DriverRedis, DriverMemory, c.Driver)
	}

	return e
}

func (c *RedisConfig) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.Addr == "" {
		e.Err("REDIS_ADDR cannot be empty")
	}

	return e
}

func LoadConfig() (cfg *Config, err error) {
	cfg = new(Config)
	err = envconfig.Process("storage", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load storage config")
	}

	return cfg, nil
}

func LoadRedisConfig() (cfg *RedisConfig, err error) {
	cfg = new(RedisConfig)
	err = envconfig.Process("redis", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load redis config")
	}

	return cfg, nil
}
