package quiz

import (
	"context"
	"time"

	"coffeeQuizBot/pkg/recommend"
	"coffeeQuizBot/pkg/storage"

	"github.com/sirupsen/logrus"
)

const (
	keysVersion    = "v1"
	sessionDomain  = "quiz_session"
	snapshotDomain = "quiz_snapshot"
	profileDomain  = "quiz_profile"
)

type Session struct {
	Profile   string            `json:"profile"`
	Step      int               `json:"step"`
	Answers   recommend.Answers `json:"answers"`
	StartedAt time.Time         `json:"started_at"`
}

// Snapshot is the answer set of the last completed quiz, the recommendation is recomputed from it.
type Snapshot struct {
	Profile     string            `json:"profile"`
	Answers     recommend.Answers `json:"answers"`
	CompletedAt time.Time         `json:"completed_at"`
}

type Store struct {
	db         storage.Client
	sessionTTL time.Duration
}

func NewStore(db storage.Client, sessionTTL time.Duration) *Store {
	return &Store{db: db, sessionTTL: sessionTTL}
}

func (s *Store) LoadSession(ctx context.Context, platform, userID string) (*Session, error) {
	sess := new(Session)
	found, err := s.db.Load(ctx, storage.GenerateCacheKey(keysVersion, platform, sessionDomain, userID), sess)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, nil
	}

	if sess.Answers == nil {
		sess.Answers = recommend.Answers{}
	}

	return sess, nil
}

func (s *Store) SaveSession(ctx context.Context, platform, userID string, sess *Session) error {
	return s.db.Save(ctx, storage.GenerateCacheKey(keysVersion, platform, sessionDomain, userID), sess, s.sessionTTL)
}

func (s *Store) DeleteSession(ctx context.Context, platform, userID string) error {
	return s.db.Delete(ctx, storage.GenerateCacheKey(keysVersion, platform, sessionDomain, userID))
}

func (s *Store) LoadSnapshot(ctx context.Context, platform, userID string) (*Snapshot, error) {
	snap := new(Snapshot)
	found, err := s.db.Load(ctx, storage.GenerateCacheKey(keysVersion, platform, snapshotDomain, userID), snap)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, nil
	}

	return snap, nil
}

func (s *Store) SaveSnapshot(ctx context.Context, platform, userID string, snap *Snapshot) error {
	key := storage.GenerateCacheKey(keysVersion, platform, snapshotDomain, userID)
	err := s.db.Save(ctx, key, snap, 0)
	if err != nil {
		return err
	}

	logrus.WithContext(ctx).Debugf("saved quiz snapshot under %q", key)

	return nil
}

// LoadProfile returns the engine profile chosen for the user or an empty string.
func (s *Store) LoadProfile(ctx context.Context, platform, userID string) (string, error) {
	raw, found, err := s.db.Read(ctx, storage.GenerateCacheKey(keysVersion, platform, profileDomain, userID))
	if err != nil || !found {
		return "", err
	}

	return string(raw), nil
}

func (s *Store) SaveProfile(ctx context.Context, platform, userID, profile string) error {
	return s.db.Write(ctx, storage.GenerateCacheKey(keysVersion, platform, profileDomain, userID), []byte(profile), 0)
}
