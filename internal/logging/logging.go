// Package logging builds the structured JSON logger shared by the server,
// middleware and CLI. Each entry is one JSON object per line with the keys
// ts, level and msg plus any attached fields.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// New returns a JSON logger writing to w. Timestamps are rendered in loc.
func New(w io.Writer, loc *time.Location, level string) *logrus.Logger {
	if loc == nil {
		loc = time.UTC
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(ParseLevel(level))
	l.SetFormatter(&locationFormatter{
		loc: loc,
		inner: &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "ts",
				logrus.FieldKeyMsg:  "msg",
			},
		},
	})
	return l
}

// ParseLevel maps a level name to a logrus level. Unknown names yield info.
func ParseLevel(s string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}

type locationFormatter struct {
	loc   *time.Location
	inner logrus.Formatter
}

func (f *locationFormatter) Format(e *logrus.Entry) ([]byte, error) {
	e.Time = e.Time.In(f.loc)
	return f.inner.Format(e)
}
