package storage

import "github.com/sirupsen/logrus"

func BuildClient() (Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	validationErr := cfg.Validate()
	if validationErr.HasErrors() {
		return nil, validationErr
	}

	if cfg.Driver == DriverMemory {
		logrus.Warn("using embedded redis, quiz sessions will be lost on restart")
		c, err := NewEmbeddedClient()
		if err != nil {
			return nil, err
		}

		return c, nil
	}

	return BuildRedisClient()
}

func BuildRedisClient() (*RedisClient, error) {
	cfg, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	c, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}

	return c, nil
}
