package logrus

import (
	"github.com/sirupsen/logrus"

	dekode "github.com/corefold/dekode"
)

var _ dekode.Logger = LogrusLogger{}

// LogrusLogger adapts a *logrus.Entry to dekode.Logger.
type LogrusLogger struct{ E *logrus.Entry }

func (l LogrusLogger) Debug(msg string, f dekode.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f dekode.Fields) {
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}
func (l LogrusLogger) Warn(msg string, f dekode.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}
func (l LogrusLogger) Error(msg string, f dekode.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
