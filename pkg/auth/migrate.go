package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MigrateAdmins stores configured admins, a changed password hash logs the admin out.
func MigrateAdmins(ctx context.Context, cfg *Config, us *UserStorage) error {
	log := logrus.WithContext(ctx)
	log.Debug("Will migrate configured admins to storage")

	for _, a := range cfg.Admins {
		existing, err := us.ReadUserFromStorage(ctx, a.PlatformName, a.Login)
		if err != nil {
			return err
		}

		if existing != nil && existing.PasswordHash == a.PasswordHash && existing.Role == AdminRole {
			continue
		}

		u := &CachedUser{
			UID:          uuid.NewString(),
			Login:        a.Login,
			PlatformName: a.PlatformName,
			Role:         AdminRole,
			PasswordHash: a.PasswordHash,
			State:        UserUnverified,
		}
		if existing != nil && existing.UID != "" {
			u.UID = existing.UID
		}

		err = us.WriteUserToStorage(ctx, u)
		if err != nil {
			return err
		}

		log.Debugf("saved admin %q to storage", a.Login)
	}

	return nil
}
