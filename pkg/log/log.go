package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.Logger{
	Out: os.Stdout,
	Formatter: &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	},
	Hooks:    make(logrus.LevelHooks),
	Level:    logrus.InfoLevel,
	ExitFunc: os.Exit,
}

// SetLevel accepts any level name logrus understands (debug, info, warn...).
func SetLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	Logger.SetLevel(lvl)
	return nil
}
