package logger

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	once       sync.Once
	projectLog *logrus.Entry
)

// GetProjectLogger returns the shared project logger. All packages log
// through this entry so that output formatting stays consistent.
func GetProjectLogger() *logrus.Entry {
	once.Do(func() {
		log := logrus.New()
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
		projectLog = log.WithField("name", "loopbake")
	})
	return projectLog
}
