package auth

import (
	"context"

	"github.com/sirupsen/logrus"
)

func BuildLoginHandler(us *UserStorage) (*LoginHandler, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	validationErr := cfg.Validate()
	if validationErr.HasErrors() {
		return nil, validationErr
	}

	if len(cfg.Admins) == 0 {
		logrus.Warn("AUTH_ADMINS is empty, admin commands are disabled")
	}

	err = MigrateAdmins(context.Background(), cfg, us)
	if err != nil {
		return nil, err
	}

	return NewLoginHandler(us, cfg), nil
}
