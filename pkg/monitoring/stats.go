package monitoring

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"coffeeQuizBot/pkg/catalog"
	"coffeeQuizBot/pkg/storage"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	statsVersion = "v1"
	statsDomain  = "stats"

	hotName  = "hot"
	coldName = "cold"
)

type Counter struct {
	Platform    string `json:"platform"`
	Profile     string `json:"profile"`
	Drink       string `json:"drink"`
	Temperature string `json:"temperature"`
	Count       int64  `json:"count"`
}

// Stats counts recommendations per platform, engine profile and drink.
type Stats struct {
	db storage.Client
}

func NewStats(db storage.Client) *Stats {
	return &Stats{db: db}
}

func temperatureName(item catalog.Item) string {
	if item.IsCold() {
		return coldName
	}

	return hotName
}

func (s *Stats) Record(ctx context.Context, platform, profile string, item catalog.Item) error {
	log := logrus.WithContext(ctx)

	key := storage.GenerateCacheKey(statsVersion, platform, statsDomain, profile, temperatureName(item), item.Name)
	val, err := s.db.Incr(ctx, key)
	if err != nil {
		return err
	}

	log.Debugf("%s was recommended %d times under profile %q", item.String(), val, profile)

	return nil
}

// Report returns all counters, the most recommended drinks first.
func (s *Stats) Report(ctx context.Context) ([]Counter, error) {
	keys, err := s.db.FindKeys(ctx, storage.GenerateCacheKey(statsVersion, "*", statsDomain, "*"))
	if err != nil {
		return nil, err
	}

	counters := make([]Counter, 0, len(keys))
	for _, key := range keys {
		counter, ok := parseCounterKey(key)
		if !ok {
			logrus.WithContext(ctx).Warnf("skipping malformed stats key %q", key)
			continue
		}

		raw, found, err := s.db.Read(ctx, key)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}

		counter.Count, err = strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid counter value %q under key %q", string(raw), key)
		}

		counters = append(counters, counter)
	}

	sort.Slice(counters, func(i, j int) bool {
		a, b := counters[i], counters[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Profile != b.Profile {
			return a.Profile < b.Profile
		}
		if a.Drink != b.Drink {
			return a.Drink < b.Drink
		}
		if a.Temperature != b.Temperature {
			return a.Temperature < b.Temperature
		}
		return a.Platform < b.Platform
	})

	return counters, nil
}

func parseCounterKey(key string) (Counter, bool) {
	parts := strings.Split(key, "/")
	tail := storage.KeyTail(key)
	if len(tail) < 3 {
		return Counter{}, false
	}

	return Counter{
		Platform:    parts[1],
		Profile:     tail[0],
		Temperature: tail[1],
		Drink:       strings.Join(tail[2:], "/"),
	}, true
}
