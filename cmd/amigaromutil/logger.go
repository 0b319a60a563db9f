package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// logrusLogger adapts a logrus logger to romutil.Logger.
type logrusLogger struct {
	log *logrus.Logger
}

func newLogger(w io.Writer, verbose bool) *logrusLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return &logrusLogger{log: l}
}

func (l *logrusLogger) Debug(msg string, kv ...interface{}) {
	l.log.WithFields(fields(kv)).Debug(msg)
}

func (l *logrusLogger) Info(msg string, kv ...interface{}) {
	l.log.WithFields(fields(kv)).Info(msg)
}

func (l *logrusLogger) Error(msg string, kv ...interface{}) {
	l.log.WithFields(fields(kv)).Error(msg)
}

// fields pairs up alternating keys and values. A trailing key without a
// value is kept under "extra".
func fields(kv []interface{}) logrus.Fields {
	f := make(logrus.Fields, len(kv)/2+1)
	for i := 0; i < len(kv); i += 2 {
		if i+1 == len(kv) {
			f["extra"] = kv[i]
			break
		}
		f[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return f
}
