package auth

import (
	"fmt"

	"coffeeQuizBot/pkg/errs"
)

type UserState uint

const (
	UserUnverified UserState = iota
	UserReadyToBeVerified
	UserVerified
)

const AdminRole = "admin"

type ConfiguredAdmin struct {
	Login        string `json:"login"`
	PlatformName string `json:"platform"`
	PasswordHash string `json:"password_hash"`
}

func (u ConfiguredAdmin) Validate() *errs.Multi {
	multiErr := errs.NewMulti()
	if u.Login == "" {
		multiErr.Err("login field cannot be empty in one of admins in AUTH_ADMINS")
	}
	if u.PlatformName == "" {
		multiErr.Err("platform field cannot be empty in one of admins in AUTH_ADMINS")
	}
	if u.PasswordHash == "" {
		multiErr.Err("password_hash field cannot be empty in one of admins in AUTH_ADMINS")
	}

	return multiErr
}

type CachedUser struct {
	UID          string    `json:"uid"`
	Login        string    `json:"login"`
	PlatformName string    `json:"platform"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"password_hash"`
	State        UserState `json:"state"`
	LoginTill    int64     `json:"login_till"`
}

func (u *CachedUser) String() string {
	if u == nil {
		return "<nil>"
	}

	return fmt.Sprintf("(login: %s, platform: %s, role: %s, state: %d)", u.Login, u.PlatformName, u.Role, u.State)
}
