package config

import (
	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

func GetLogger(level string) *logrus.Logger {
	if logg != nil {
		return logg
	}
	logg = logrus.New()
	logg.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lv, err := logrus.ParseLevel(level); err == nil {
		logg.SetLevel(lv)
	} else {
		logg.SetLevel(logrus.InfoLevel)
	}
	return logg
}
