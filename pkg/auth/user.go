package auth

import (
	"context"
	"time"

	"coffeeQuizBot/pkg/msg"
	"coffeeQuizBot/pkg/storage"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	usersPrefix  = "users"
	usersVersion = "v1"

	curUserMetaKey = "curUser"
)

func GetUserFromReq(req *msg.Request) *CachedUser {
	userI, ok := req.Meta[curUserMetaKey]
	if !ok {
		return nil
	}

	u, _ := userI.(*CachedUser)

	return u
}

func GenerateUserCacheKey(platform, login string) string {
	return storage.GenerateCacheKey(usersVersion, platform, usersPrefix, login)
}

func (u *CachedUser) IsLoggedIn(now time.Time) bool {
	if u == nil || u.State != UserVerified {
		return false
	}

	return u.LoginTill == 0 || u.LoginTill > now.Unix()
}

type UserStorage struct {
	db storage.Client
}

func NewUserStorage(db storage.Client) *UserStorage {
	return &UserStorage{db: db}
}

func (us *UserStorage) WriteUserToStorage(ctx context.Context, u *CachedUser) error {
	log := logrus.WithContext(ctx)
	ctxValue := context.WithValue(ctx, storage.IsNotLoggableContentCtxKey, true)

	cacheKey := GenerateUserCacheKey(u.PlatformName, u.Login)

	err := us.db.Save(ctxValue, cacheKey, u, 0)
	if err != nil {
		return err
	}

	log.Debugf("wrote user %s under %q", u.String(), cacheKey)

	return nil
}

func (us *UserStorage) ReadUserFromStorage(ctx context.Context, platform, login string) (user *CachedUser, err error) {
	log := logrus.WithContext(ctx)

	cacheKey := GenerateUserCacheKey(platform, login)
	u := new(CachedUser)

	ctxValue := context.WithValue(ctx, storage.IsNotLoggableContentCtxKey, true)
	isFound, err := us.db.Load(ctxValue, cacheKey, u)
	if err != nil {
		return nil, err
	}

	if !isFound {
		return nil, nil
	}

	log.Debugf("successfully read user %s under %q", u.String(), cacheKey)

	return u, nil
}

type UserMiddleware struct {
	us *UserStorage
}

func NewUserMiddleware(us *UserStorage) *UserMiddleware {
	return &UserMiddleware{us: us}
}

// Handle attaches the stored user to the request, unknown senders pass through as guests.
func (um UserMiddleware) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	platform := req.Platform
	userID := req.Sender.GetID()

	if platform == "" {
		return nil, errors.New("unknown message platform")
	}

	if userID == "" {
		return nil, errors.New("unknown message sender id")
	}

	u, err := um.us.ReadUserFromStorage(ctx, platform, userID)
	if err != nil {
		return nil, err
	}

	if u == nil {
		return nil, nil
	}

	req.SetMeta(curUserMetaKey, u)

	return nil, nil
}

func CheckAdmin(ctx context.Context, req *msg.Request) bool {
	log := logrus.WithContext(ctx)

	user := GetUserFromReq(req)

	if user == nil || user.Role != AdminRole || !user.IsLoggedIn(timeNow()) {
		log.Warnf("unauthorized attempt to access admin action, provided user data: %s", user.String())
		return false
	}

	return true
}
