package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetLevel(logrus.InfoLevel)
	logg.SetOutput(os.Stdout)
}

func Logger() *logrus.Logger {
	return logg
}

// LogError emits a structured error record tagged with the module and
// function it came from.
func LogError(module, funcName, context string, err error) {
	logg.WithFields(logrus.Fields{
		"module":   module,
		"funcName": funcName,
		"context":  context,
	}).Error(err.Error())
}
