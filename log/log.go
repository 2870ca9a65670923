// Package log provides the logrus based logger used by fat-address. Loggers
// must be created after the flag package has been loaded so that the debug
// and color settings take effect.
package log

import (
	"io"

	"github.com/Factom-Asset-Tokens/fataddress/flag"

	"github.com/sirupsen/logrus"
)

type Log struct {
	*logrus.Entry
}

func New(pkg string) Log {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: !flag.NoColor,
		DisableColors:          flag.NoColor,
		DisableTimestamp:       true,
		DisableLevelTruncation: true}
	if flag.LogDebug {
		log.SetLevel(logrus.DebugLevel)
	}
	return Log{Entry: log.WithField("pkg", pkg)}
}

// SetOutput directs all output of l to w.
func (l Log) SetOutput(w io.Writer) {
	l.Logger.SetOutput(w)
}
