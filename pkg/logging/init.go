package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type loggingContextKey string

const TrackingIDKey loggingContextKey = "trackingID"

type Config struct {
	Level string `envconfig:"LOG_LEVEL" default:"debug"`
}

func LoadConfig() (*Config, error) {
	cfg := new(Config)
	err := envconfig.Process("log", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load logging config")
	}

	return cfg, nil
}

func WithTrackingId(ctx context.Context) context.Context {
	trackingID := uuid.New().String()
	ctxWithTrackingId := context.WithValue(ctx, TrackingIDKey, trackingID)
	return ctxWithTrackingId
}

func GetTrackingID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	trackingID, _ := ctx.Value(TrackingIDKey).(string)

	return trackingID
}

type trackingIDFormatter struct {
	logrus.TextFormatter
}

func (f *trackingIDFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	trackingID := GetTrackingID(entry.Context)
	if trackingID != "" {
		entry.Data["trackingID"] = trackingID
	}

	return f.TextFormatter.Format(entry)
}

func Init(cfg *Config) error {
	level := logrus.DebugLevel
	if cfg != nil && cfg.Level != "" {
		parsedLevel, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return errors.Wrapf(err, "invalid LOG_LEVEL %q", cfg.Level)
		}
		level = parsedLevel
	}

	logrus.SetLevel(level)
	logrus.SetFormatter(newFormatter())

	return nil
}

func newFormatter() logrus.Formatter {
	return &trackingIDFormatter{
		TextFormatter: logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
		},
	}
}
