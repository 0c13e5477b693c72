package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	base "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type loggableCtxKey string

const IsNotLoggableContentCtxKey loggableCtxKey = "is_not_loggable"

type RedisClient struct {
	baseClient *base.Client
	// embedded is set when the client talks to an in-process server.
	embedded *miniredis.Miniredis
}

func NewClient(cfg *RedisConfig) (*RedisClient, error) {
	err := cfg.Validate()
	if err.HasErrors() {
		return nil, err
	}

	return connect(&base.Options{
		Addr:     cfg.Addr,
		Password: cfg.Pass,
		DB:       cfg.DB,
	})
}

// NewEmbeddedClient starts an in-process redis server and connects to it. Data lives as long as the client.
func NewEmbeddedClient() (*RedisClient, error) {
	srv, err := miniredis.Run()
	if err != nil {
		return nil, errors.Wrap(err, "failed to start embedded redis")
	}

	c, err := connect(&base.Options{Addr: srv.Addr()})
	if err != nil {
		srv.Close()
		return nil, err
	}
	c.embedded = srv

	return c, nil
}

func connect(opts *base.Options) (*RedisClient, error) {
	rdb := base.NewClient(opts)

	redisCheckErr := checkRedis(rdb)
	if redisCheckErr != nil {
		logrus.Errorf("failed to ping redis %q", opts.Addr)
		return nil, redisCheckErr
	}

	logrus.Infof("ping to redis %q is successful", opts.Addr)
	return &RedisClient{baseClient: rdb}, nil
}

func checkRedis(cl *base.Client) error {
	logrus.Infof("will ping redis")
	operation := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		status := cl.Ping(ctx)
		err := status.Err()
		if err != nil {
			logrus.Errorf("Failed to connect to redis: %v", err)
			return err
		}

		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = time.Minute

	err := backoff.Retry(operation, b)
	if err != nil {
		return errors.Wrap(err, "failed to connect to redis")
	}

	return nil
}

func isLoggable(ctx context.Context) bool {
	return ctx.Value(IsNotLoggableContentCtxKey) == nil
}

func (c *RedisClient) Read(ctx context.Context, key string) (raw []byte, found bool, err error) {
	log := logrus.WithContext(ctx)

	val, err := c.baseClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, base.Nil) {
			log.Debugf("nothing found in redis under key %q", key)
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "failed to get data from redis under key %q", key)
	}

	if isLoggable(ctx) {
		log.Debugf("successfully read data %q from redis under key %q", val, key)
	} else {
		log.Debugf("successfully read data from redis under key %q", key)
	}

	return []byte(val), true, nil
}

func (c *RedisClient) Write(ctx context.Context, key string, raw []byte, exp time.Duration) error {
	log := logrus.WithContext(ctx)

	err := c.baseClient.Set(ctx, key, raw, exp).Err()
	if err != nil {
		return errors.Wrapf(err, "failed to write data to redis under key %q", key)
	}

	if isLoggable(ctx) {
		log.Debugf("wrote data %q to redis under key %q", string(raw), key)
	} else {
		log.Debugf("wrote hidden data to redis under key %q", key)
	}

	return nil
}

func (c *RedisClient) Delete(ctx context.Context, key string) error {
	log := logrus.WithContext(ctx)

	err := c.baseClient.Del(ctx, key).Err()
	if err != nil {
		return errors.Wrapf(err, "failed to delete data from redis under key %q", key)
	}

	log.Debugf("deleted data from redis under key %q", key)
	return nil
}

func (c *RedisClient) Load(ctx context.Context, key string, target interface{}) (found bool, err error) {
	return load(ctx, c, key, target)
}

func (c *RedisClient) Save(ctx context.Context, key string, data interface{}, validity time.Duration) error {
	return save(ctx, c, key, data, validity)
}

func (c *RedisClient) FindKeys(ctx context.Context, pattern string) (keys []string, err error) {
	keys, err = c.baseClient.Keys(ctx, pattern).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find keys in redis by pattern %q", pattern)
	}

	return keys, nil
}

func (c *RedisClient) Incr(ctx context.Context, key string) (int64, error) {
	val, err := c.baseClient.Incr(ctx, key).Result()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to increment counter in redis under key %q", key)
	}

	return val, nil
}

func (c *RedisClient) Close() error {
	err := c.baseClient.Close()
	if c.embedded != nil {
		c.embedded.Close()
	}

	return err
}

func load(ctx context.Context, c Client, key string, target interface{}) (found bool, err error) {
	log := logrus.WithContext(ctx)

	log.Debugf("will load %T for key %s", target, key)

	rawData, found, err := c.Read(ctx, key)
	if err != nil {
		return false, errors.Wrap(err, "failed to read data from storage")
	}

	if !found {
		return false, nil
	}

	err = json.Unmarshal(rawData, target)
	if err != nil {
		return false, errors.Wrapf(err, "failed to convert %q to %T", string(rawData), target)
	}

	return true, nil
}

func save(ctx context.Context, c Client, key string, data interface{}, validity time.Duration) error {
	rawBytes, err := json.Marshal(data)
	if err != nil {
		return errors.Wrapf(err, "failed to convert %T to json", data)
	}

	return c.Write(ctx, key, rawBytes, validity)
}
